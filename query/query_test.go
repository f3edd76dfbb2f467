package query

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/ontograph/ontograph/voc/owl"
)

const exNS = "http://example.org/onto#"

var (
	rdfType  = quad.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	owlClass = quad.IRI(owl.Class)
)

func iri(local string) quad.IRI { return quad.IRI(exNS + local) }

func testTriples() []quad.Quad {
	return []quad.Quad{
		{Subject: iri("Person"), Predicate: rdfType, Object: owlClass},
		{Subject: iri("Boy"), Predicate: rdfType, Object: owlClass},
		{Subject: iri("Girl"), Predicate: rdfType, Object: owlClass},
		{Subject: iri("Boy"), Predicate: quad.IRI("http://www.w3.org/2000/01/rdf-schema#subClassOf"), Object: iri("Person")},
		{Subject: iri("Girl"), Predicate: quad.IRI("http://www.w3.org/2000/01/rdf-schema#subClassOf"), Object: iri("Person")},
		{Subject: iri("Alice"), Predicate: rdfType, Object: iri("Person")},
		{Subject: iri("Alice"), Predicate: quad.IRI("http://www.w3.org/2000/01/rdf-schema#label"), Object: quad.String("Alice")},
		{Subject: iri("Alice"), Predicate: iri("hasChild"), Object: iri("Bob")},
		{Subject: iri("Bob"), Predicate: rdfType, Object: iri("Person")},
	}
}

func testNS() map[string]string {
	return map[string]string{"ex": exNS}
}

func TestSelectDistinctClasses(t *testing.T) {
	res, err := Execute("SELECT DISTINCT ?x WHERE { ?x a owl:Class }", testTriples(), testNS())
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, res.Columns)
	require.Len(t, res.Rows, 3)

	seen := make(map[string]bool)
	for _, row := range res.Rows {
		require.False(t, seen[row["x"]], "duplicate binding %q", row["x"])
		seen[row["x"]] = true
	}
	require.True(t, seen["ex:Person"])
	require.True(t, seen["ex:Boy"])
	require.True(t, seen["ex:Girl"])
}

func TestWhereKeywordOptional(t *testing.T) {
	withWhere, err := Execute("SELECT ?x WHERE { ?x a owl:Class }", testTriples(), testNS())
	require.NoError(t, err)
	withoutWhere, err := Execute("SELECT ?x { ?x a owl:Class }", testTriples(), testNS())
	require.NoError(t, err)
	require.Equal(t, withWhere.Rows, withoutWhere.Rows)
}

func TestJoinAcrossPatterns(t *testing.T) {
	res, err := Execute(`
		SELECT ?sub ?super {
			?sub rdfs:subClassOf ?super .
			?sub a owl:Class
		}`, testTriples(), testNS())
	require.NoError(t, err)
	require.Equal(t, []string{"sub", "super"}, res.Columns)
	require.Len(t, res.Rows, 2)
	for _, row := range res.Rows {
		require.Equal(t, "ex:Person", row["super"])
	}
}

func TestLimit(t *testing.T) {
	res, err := Execute("SELECT ?s ?p ?o { ?s ?p ?o } LIMIT 1", testTriples(), testNS())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	res, err = Execute("SELECT ?x { ?x a ?t } LIMIT 3", testTriples(), testNS())
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
}

func TestLimitZero(t *testing.T) {
	res, err := Execute("SELECT ?x { ?x a owl:Class } LIMIT 0", testTriples(), testNS())
	require.NoError(t, err)
	require.Empty(t, res.Rows)
}

func TestStarProjection(t *testing.T) {
	res, err := Execute("SELECT * { ?x a ?t }", testTriples(), testNS())
	require.NoError(t, err)
	require.Equal(t, []string{"x", "t"}, res.Columns)
	require.Len(t, res.Rows, 5)
}

func TestPrefixDeclaration(t *testing.T) {
	res, err := Execute(`
		PREFIX fam: <http://example.org/onto#>
		SELECT ?c { ?c fam:hasChild ?k }`, testTriples(), nil)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	// Query-local prefixes also shorten displayed bindings.
	require.Equal(t, "fam:Alice", res.Rows[0]["c"])
}

func TestUnknownPrefixPassesThrough(t *testing.T) {
	// An unresolvable prefix is not an error; the pattern simply
	// matches nothing.
	res, err := Execute("SELECT ?x { ?x nope:pred ?y }", testTriples(), testNS())
	require.NoError(t, err)
	require.Empty(t, res.Rows)
}

func TestLiteralQuoteTolerance(t *testing.T) {
	res, err := Execute(`SELECT ?s { ?s rdfs:label "Alice" }`, testTriples(), testNS())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "ex:Alice", res.Rows[0]["s"])
}

func TestFullIRITerm(t *testing.T) {
	res, err := Execute("SELECT ?x { ?x a <http://www.w3.org/2002/07/owl#Class> }", testTriples(), testNS())
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
}

func TestComments(t *testing.T) {
	res, err := Execute(`
		# find the classes
		SELECT ?x { ?x a owl:Class } # trailing comment`, testTriples(), testNS())
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
}

func TestQueryIdempotent(t *testing.T) {
	q := "SELECT ?sub ?super { ?sub rdfs:subClassOf ?super }"
	first, err := Execute(q, testTriples(), testNS())
	require.NoError(t, err)
	second, err := Execute(q, testTriples(), testNS())
	require.NoError(t, err)
	require.Equal(t, first.Columns, second.Columns)
	require.Equal(t, first.Rows, second.Rows)
}

func TestMalformedQueries(t *testing.T) {
	tests := []struct {
		name string
		qry  string
	}{
		{"missing select", "{ ?x a owl:Class }"},
		{"missing block", "SELECT ?x"},
		{"no variables", "SELECT { ?x a owl:Class }"},
		{"unterminated block", "SELECT ?x { ?x a owl:Class"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Execute(tc.qry, testTriples(), testNS())
			require.ErrorIs(t, err, ErrMalformedQuery)
		})
	}
}

func TestNoMatchesIsNotAnError(t *testing.T) {
	res, err := Execute("SELECT ?x { ?x a ex:Spaceship }", testTriples(), testNS())
	require.NoError(t, err)
	require.Empty(t, res.Rows)
	require.Equal(t, []string{"x"}, res.Columns)
}

func TestBoundVariableJoin(t *testing.T) {
	// ?p must bind consistently across both patterns.
	res, err := Execute(`
		SELECT ?p {
			?a ex:hasChild ?p .
			?p a ex:Person
		}`, testTriples(), testNS())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Equal(t, "ex:Bob", res.Rows[0]["p"])
}

func TestExecutionTimeRecorded(t *testing.T) {
	res, err := Execute("SELECT ?x { ?x a owl:Class }", testTriples(), testNS())
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.ExecutionTime.Nanoseconds(), int64(0))
}

package translate

import (
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/ontograph/ontograph/graph"
	"github.com/ontograph/ontograph/voc/owl"
)

const base = "http://example.org/family#"

var (
	rdfsSubClassOf = quad.IRI("http://www.w3.org/2000/01/rdf-schema#subClassOf")
	rdfsDomain     = quad.IRI("http://www.w3.org/2000/01/rdf-schema#domain")
	rdfsRange      = quad.IRI("http://www.w3.org/2000/01/rdf-schema#range")
)

func familyModel() *graph.Model {
	return &graph.Model{
		Meta: graph.Meta{Title: "Family", IRI: "http://example.org/family"},
		Entities: []graph.Entity{
			{ID: "1", Kind: graph.KindClass, Label: "Person", Definition: "A human being.",
				Attributes: []graph.Attribute{{Name: "age", Type: "integer"}}},
			{ID: "2", Kind: graph.KindClass, Label: "Boy",
				Axioms: []graph.Axiom{{Name: "SubClass Of", Expression: "Person"}}},
			{ID: "3", Kind: graph.KindClass, Label: "Girl"},
			{ID: "4", Kind: graph.KindObjectProperty, Label: "hasChild",
				Attributes: []graph.Attribute{{Name: "Asymmetric"}}},
			{ID: "5", Kind: graph.KindIndividual, Label: "Alice",
				Annotations: []graph.Annotation{{Property: "comment", Value: "example individual", Lang: "en"}}},
		},
		Relations: []graph.Relation{
			{Source: "2", Target: "1", Label: "subClassOf"},
			{Source: "3", Target: "1", Label: "subClassOf"},
			{Source: "2", Target: "3", Label: "disjointWith"},
			{Source: "5", Target: "1", Label: "type"},
		},
	}
}

func find(ts *TripleSet, s, p, o quad.Value) bool {
	for _, t := range ts.Triples {
		if t.Subject == s && t.Predicate == p && t.Object == o {
			return true
		}
	}
	return false
}

func count(ts *TripleSet, match func(quad.Quad) bool) int {
	n := 0
	for _, t := range ts.Triples {
		if match(t) {
			n++
		}
	}
	return n
}

func TestBuildDeclarations(t *testing.T) {
	ts := Build(familyModel(), Options{})

	require.True(t, find(ts, quad.IRI(base+"Person"), rdfType, quad.IRI(owl.Class)))
	require.True(t, find(ts, quad.IRI(base+"Person"), rdfsLabel, quad.String("Person")))
	require.True(t, find(ts, quad.IRI(base+"Person"), rdfsComment, quad.String("A human being.")))
	require.True(t, find(ts, quad.IRI(base+"hasChild"), rdfType, quad.IRI(owl.ObjectProperty)))
	require.True(t, find(ts, quad.IRI(base+"Alice"), rdfType, quad.IRI(owl.NamedIndividual)))
}

func TestBuildOntologyHeader(t *testing.T) {
	ts := Build(familyModel(), Options{})
	require.True(t, find(ts, quad.IRI("http://example.org/family"), rdfType, quad.IRI(owl.Ontology)))
	require.True(t, find(ts, quad.IRI("http://example.org/family"), rdfsLabel, quad.String("Family")))
}

func TestBuildClassAttribute(t *testing.T) {
	ts := Build(familyModel(), Options{})
	age := quad.IRI(base + "age")
	require.True(t, find(ts, age, rdfType, quad.IRI(owl.DatatypeProperty)))
	require.True(t, find(ts, age, rdfsDomain, quad.IRI(base+"Person")))
	require.True(t, find(ts, age, rdfsRange, quad.IRI("http://www.w3.org/2001/XMLSchema#integer")))
}

func TestBuildPropertyCharacteristic(t *testing.T) {
	ts := Build(familyModel(), Options{})
	require.True(t, find(ts, quad.IRI(base+"hasChild"), rdfType, quad.IRI(owl.AsymmetricProperty)))
}

func TestBuildStructuralRelations(t *testing.T) {
	ts := Build(familyModel(), Options{})
	require.True(t, find(ts, quad.IRI(base+"Boy"), rdfsSubClassOf, quad.IRI(base+"Person")))
	require.True(t, find(ts, quad.IRI(base+"Girl"), rdfsSubClassOf, quad.IRI(base+"Person")))
	require.True(t, find(ts, quad.IRI(base+"Boy"), quad.IRI(owl.DisjointWith), quad.IRI(base+"Girl")))
	require.True(t, find(ts, quad.IRI(base+"Alice"), rdfType, quad.IRI(base+"Person")))
}

func TestBuildSubClassNotDuplicated(t *testing.T) {
	// Boy carries both a SubClass Of axiom and a subClassOf edge to
	// Person; the triple must appear once.
	ts := Build(familyModel(), Options{})
	n := count(ts, func(q quad.Quad) bool {
		return q.Subject == quad.Value(quad.IRI(base+"Boy")) &&
			q.Predicate == quad.Value(rdfsSubClassOf) &&
			q.Object == quad.Value(quad.IRI(base+"Person"))
	})
	require.Equal(t, 1, n)
}

func TestBuildRelationPropertyDeclaredOnce(t *testing.T) {
	m := familyModel()
	m.Relations = append(m.Relations,
		graph.Relation{Source: "1", Target: "2", Label: "hasChild"},
		graph.Relation{Source: "1", Target: "3", Label: "hasChild"},
	)
	ts := Build(m, Options{})
	n := count(ts, func(q quad.Quad) bool {
		return q.Subject == quad.Value(quad.IRI(base+"hasChild")) &&
			q.Predicate == quad.Value(rdfType) &&
			q.Object == quad.Value(quad.IRI(owl.ObjectProperty))
	})
	require.Equal(t, 1, n)
	require.True(t, find(ts, quad.IRI(base+"Person"), quad.IRI(base+"hasChild"), quad.IRI(base+"Boy")))
}

func TestBuildInferredRelationSkipped(t *testing.T) {
	m := familyModel()
	m.Relations = append(m.Relations, graph.Relation{Source: "2", Target: "3", Label: "likes", Inferred: true})
	ts := Build(m, Options{})
	require.False(t, find(ts, quad.IRI(base+"Boy"), quad.IRI(base+"likes"), quad.IRI(base+"Girl")))
}

func TestBuildTwiceIdentical(t *testing.T) {
	m := familyModel()
	ts1 := Build(m, Options{})
	ts2 := Build(m, Options{})
	require.Equal(t, ts1.Triples, ts2.Triples)
	require.Equal(t, ts1.Namespaces, ts2.Namespaces)
}

func TestBuildManchesterAxiom(t *testing.T) {
	m := familyModel()
	m.Entities[1].Axioms = append(m.Entities[1].Axioms,
		graph.Axiom{Name: "SubClass Of", Expression: "hasParent some Person"})
	ts := Build(m, Options{})
	n := count(ts, func(q quad.Quad) bool {
		return q.Predicate == quad.Value(quad.IRI(owl.SomeValuesFrom))
	})
	require.Equal(t, 1, n)
	// The restriction node hangs off Boy via subClassOf.
	n = count(ts, func(q quad.Quad) bool {
		if q.Subject != quad.Value(quad.IRI(base+"Boy")) || q.Predicate != quad.Value(rdfsSubClassOf) {
			return false
		}
		_, blank := q.Object.(quad.BNode)
		return blank
	})
	require.Equal(t, 1, n)
}

func TestBuildListAxiom(t *testing.T) {
	m := familyModel()
	m.Entities[0].Axioms = append(m.Entities[0].Axioms,
		graph.Axiom{Name: "Disjoint Union Of", Expression: "Boy Girl"})
	ts := Build(m, Options{})
	n := count(ts, func(q quad.Quad) bool {
		return q.Subject == quad.Value(quad.IRI(base+"Person")) &&
			q.Predicate == quad.Value(quad.IRI(owl.DisjointUnionOf))
	})
	require.Equal(t, 1, n)
}

func TestBuildUnknownAxiomFallsBack(t *testing.T) {
	m := familyModel()
	m.Entities[2].Axioms = append(m.Entities[2].Axioms,
		graph.Axiom{Name: "Some Future Axiom", Expression: "Person"})
	ts := Build(m, Options{})
	require.True(t, find(ts, quad.IRI(base+"Girl"), rdfsSubClassOf, quad.IRI(base+"Person")))
}

func TestWriteTurtle(t *testing.T) {
	ts := Build(familyModel(), Options{})
	var sb strings.Builder
	require.NoError(t, ts.WriteTurtle(&sb))
	out := sb.String()

	require.Contains(t, out, "@prefix ex: <http://example.org/family#> .")
	require.Contains(t, out, "@prefix owl: <http://www.w3.org/2002/07/owl#> .")
	require.Contains(t, out, "ex:Person rdf:type owl:Class .")
	require.Contains(t, out, "ex:Boy rdfs:subClassOf ex:Person .")
	require.True(t, strings.HasPrefix(out, "@prefix"))
}

func TestWriteTurtleBlankNodes(t *testing.T) {
	m := familyModel()
	m.Entities[1].Axioms = []graph.Axiom{{Name: "SubClass Of", Expression: "Person and (hasParent some Person)"}}
	ts := Build(m, Options{})
	var sb strings.Builder
	require.NoError(t, ts.WriteTurtle(&sb))
	require.Contains(t, sb.String(), "_:b0")
}

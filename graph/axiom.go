package graph

import "strings"

// AxiomKind is the closed set of axiom shapes the translator
// understands. It is derived from the axiom's display name once, at
// the model boundary, so the translator can switch on it exhaustively.
type AxiomKind int

const (
	// AxiomRestriction is the fallback: an unrecognized axiom name is
	// read as an implicit sub-class restriction.
	AxiomRestriction AxiomKind = iota
	AxiomSubClassOf
	AxiomSuperClassOf
	AxiomDisjointWith
	AxiomEquivalentTo
	AxiomUnionOf
	AxiomIntersectionOf
	AxiomOneOf
	AxiomComplementOf
	AxiomDisjointUnionOf
	AxiomHasKey
	AxiomSameAs
	AxiomDifferentFrom
	AxiomSubPropertyOf
	AxiomInverseOf
	AxiomDomain
	AxiomRange
	AxiomPropertyChain
)

var axiomKinds = map[string]AxiomKind{
	"subclassof":         AxiomSubClassOf,
	"subclass":           AxiomSubClassOf,
	"superclassof":       AxiomSuperClassOf,
	"superclass":         AxiomSuperClassOf,
	"disjointwith":       AxiomDisjointWith,
	"disjointclasses":    AxiomDisjointWith,
	"equivalentto":       AxiomEquivalentTo,
	"equivalentclass":    AxiomEquivalentTo,
	"unionof":            AxiomUnionOf,
	"intersectionof":     AxiomIntersectionOf,
	"oneof":              AxiomOneOf,
	"complementof":       AxiomComplementOf,
	"disjointunionof":    AxiomDisjointUnionOf,
	"haskey":             AxiomHasKey,
	"sameas":             AxiomSameAs,
	"sameindividualas":   AxiomSameAs,
	"differentfrom":      AxiomDifferentFrom,
	"subpropertyof":      AxiomSubPropertyOf,
	"subproperty":        AxiomSubPropertyOf,
	"inverseof":          AxiomInverseOf,
	"domain":             AxiomDomain,
	"range":              AxiomRange,
	"propertychain":      AxiomPropertyChain,
	"propertychainaxiom": AxiomPropertyChain,
	"subpropertychain":   AxiomPropertyChain,
}

// Kind normalizes the axiom's display name and maps it to an
// AxiomKind. Names are matched case-insensitively with every
// non-alphanumeric character stripped, so "Sub-Class Of" and
// "subClassOf" select the same shape.
func (a Axiom) Kind() AxiomKind {
	if k, ok := axiomKinds[normalizeAxiomName(a.Name)]; ok {
		return k
	}
	return AxiomRestriction
}

func normalizeAxiomName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// Package owl contains constants of the Web Ontology Language (OWL)
package owl

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2002/07/owl#`
	Prefix = `owl:`
)

// Classes.
const (
	Class              = NS + "Class"
	Thing              = NS + "Thing"
	Nothing            = NS + "Nothing"
	Restriction        = NS + "Restriction"
	Ontology           = NS + "Ontology"
	NamedIndividual    = NS + "NamedIndividual"
	ObjectProperty     = NS + "ObjectProperty"
	DatatypeProperty   = NS + "DatatypeProperty"
	AnnotationProperty = NS + "AnnotationProperty"
)

// Property characteristics.
const (
	FunctionalProperty        = NS + "FunctionalProperty"
	InverseFunctionalProperty = NS + "InverseFunctionalProperty"
	TransitiveProperty        = NS + "TransitiveProperty"
	SymmetricProperty         = NS + "SymmetricProperty"
	AsymmetricProperty        = NS + "AsymmetricProperty"
	ReflexiveProperty         = NS + "ReflexiveProperty"
	IrreflexiveProperty       = NS + "IrreflexiveProperty"
)

// Class expression predicates.
const (
	IntersectionOf  = NS + "intersectionOf"
	UnionOf         = NS + "unionOf"
	ComplementOf    = NS + "complementOf"
	OneOf           = NS + "oneOf"
	DisjointUnionOf = NS + "disjointUnionOf"
)

// Restriction predicates.
const (
	OnProperty              = NS + "onProperty"
	SomeValuesFrom          = NS + "someValuesFrom"
	AllValuesFrom           = NS + "allValuesFrom"
	HasValue                = NS + "hasValue"
	HasSelf                 = NS + "hasSelf"
	OnClass                 = NS + "onClass"
	OnDataRange             = NS + "onDataRange"
	Cardinality             = NS + "cardinality"
	MinCardinality          = NS + "minCardinality"
	MaxCardinality          = NS + "maxCardinality"
	QualifiedCardinality    = NS + "qualifiedCardinality"
	MinQualifiedCardinality = NS + "minQualifiedCardinality"
	MaxQualifiedCardinality = NS + "maxQualifiedCardinality"
)

// Axiom predicates.
const (
	EquivalentClass    = NS + "equivalentClass"
	DisjointWith       = NS + "disjointWith"
	HasKey             = NS + "hasKey"
	SameAs             = NS + "sameAs"
	DifferentFrom      = NS + "differentFrom"
	InverseOf          = NS + "inverseOf"
	PropertyChainAxiom = NS + "propertyChainAxiom"
	VersionIRI         = NS + "versionIRI"
)

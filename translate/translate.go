// Package translate builds the RDF triple set for an ontology graph
// model. Entities, their attributes and inline axioms, and the typed
// relations between entities are lowered into subject-predicate-object
// statements; compound class expressions go through the manchester
// parser and synthesize blank nodes.
//
// Translation is lenient end to end: unrecognized fragments degrade to
// best-effort named resources and are logged, never fatal.
package translate

import (
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
	"github.com/cayleygraph/quad/voc/xsd"

	"github.com/ontograph/ontograph/clog"
	"github.com/ontograph/ontograph/graph"
	"github.com/ontograph/ontograph/manchester"
	"github.com/ontograph/ontograph/voc/owl"
)

// Default namespace assigned when the model carries no base IRI.
const (
	DefaultPrefix = "ex"
	DefaultBase   = "http://example.org/ontology#"
)

var (
	rdfType     = quad.IRI(rdf.Type).Full()
	rdfsLabel   = quad.IRI(rdfs.Label).Full()
	rdfsComment = quad.IRI(rdfs.Comment).Full()
)

// Options configures one translation pass.
type Options struct {
	// Prefix and BaseIRI define the default namespace bare names
	// resolve against.
	Prefix  string
	BaseIRI string
}

// TripleSet is the product of one translation pass: the ordered triple
// sequence and the prefix table it was produced under. The order is
// significant only for reproducible serialization; matching treats the
// triples as a set.
type TripleSet struct {
	Triples    []quad.Quad
	Namespaces map[string]string
}

// Reader adapts the set to the quad format writers.
func (ts *TripleSet) Reader() quad.Reader {
	return quad.NewReader(ts.Triples)
}

// kindTypes maps entity kinds to their vocabulary type IRI.
var kindTypes = map[graph.Kind]quad.IRI{
	graph.KindClass:          quad.IRI(owl.Class),
	graph.KindIndividual:     quad.IRI(owl.NamedIndividual),
	graph.KindObjectProperty: quad.IRI(owl.ObjectProperty),
	graph.KindDataProperty:   quad.IRI(owl.DatatypeProperty),
	graph.KindDatatype:       quad.IRI(rdfs.Datatype).Full(),
}

// characteristics maps property attribute names to OWL property
// characteristic classes.
var characteristics = map[string]quad.IRI{
	"functional":        quad.IRI(owl.FunctionalProperty),
	"inversefunctional": quad.IRI(owl.InverseFunctionalProperty),
	"transitive":        quad.IRI(owl.TransitiveProperty),
	"symmetric":         quad.IRI(owl.SymmetricProperty),
	"asymmetric":        quad.IRI(owl.AsymmetricProperty),
	"reflexive":         quad.IRI(owl.ReflexiveProperty),
	"irreflexive":       quad.IRI(owl.IrreflexiveProperty),
}

// datatypes maps editor attribute type names to XSD datatypes.
var datatypes = map[string]quad.IRI{
	"string":   quad.IRI(xsd.NS + "string"),
	"integer":  quad.IRI(xsd.NS + "integer"),
	"int":      quad.IRI(xsd.NS + "integer"),
	"boolean":  quad.IRI(xsd.NS + "boolean"),
	"float":    quad.IRI(xsd.NS + "float"),
	"double":   quad.IRI(xsd.NS + "double"),
	"decimal":  quad.IRI(xsd.NS + "decimal"),
	"date":     quad.IRI(xsd.NS + "date"),
	"datetime": quad.IRI(xsd.NS + "dateTime"),
}

type builder struct {
	model    *graph.Model
	ctx      *manchester.Context
	triples  []quad.Quad
	seen     map[string]struct{}
	declared map[quad.IRI]struct{}
}

// Build translates the model into a triple set. The blank node counter
// lives inside this call: building an unchanged model twice yields
// triple-for-triple identical output.
func Build(m *graph.Model, opts Options) *TripleSet {
	prefix, base := opts.Prefix, opts.BaseIRI
	if base == "" {
		base = m.Meta.IRI
	}
	if base == "" {
		base = DefaultBase
	}
	if !strings.HasSuffix(base, "#") && !strings.HasSuffix(base, "/") {
		base += "#"
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}

	ns := map[string]string{
		"rdf":  rdf.NS,
		"rdfs": rdfs.NS,
		"owl":  owl.NS,
		"xsd":  xsd.NS,
		prefix: base,
	}
	b := &builder{
		model: m,
		ctx: &manchester.Context{
			Prefix:     prefix,
			Base:       base,
			Namespaces: ns,
			Blank:      manchester.NewBlankNodes(),
		},
		seen:     make(map[string]struct{}),
		declared: make(map[quad.IRI]struct{}),
	}

	b.header()
	for i := range m.Entities {
		b.entity(&m.Entities[i])
	}
	for i := range m.Relations {
		b.relation(&m.Relations[i])
	}
	return &TripleSet{Triples: b.triples, Namespaces: ns}
}

// header emits the ontology declaration when the model carries
// metadata.
func (b *builder) header() {
	meta := b.model.Meta
	if meta.IRI == "" && meta.Title == "" {
		return
	}
	subj := quad.IRI(strings.TrimRight(b.ctx.Base, "#/"))
	if meta.IRI != "" {
		subj = quad.IRI(strings.TrimRight(meta.IRI, "#/"))
	}
	b.add(subj, rdfType, quad.IRI(owl.Ontology))
	if meta.Title != "" {
		b.add(subj, rdfsLabel, quad.String(meta.Title))
	}
	if meta.Version != "" {
		b.add(subj, quad.IRI(owl.VersionIRI), quad.IRI(strings.TrimRight(b.ctx.Base, "#/")+"/"+meta.Version))
	}
}

func (b *builder) entity(e *graph.Entity) {
	subj := b.ref(e)
	if typ, ok := kindTypes[e.Kind]; ok {
		b.add(subj, rdfType, typ)
	} else {
		clog.Warningf("translate: entity %q has unknown kind, skipping type declaration", e.ID)
	}
	if e.Label != "" {
		b.add(subj, rdfsLabel, quad.String(e.Label))
	}
	if e.Definition != "" {
		b.add(subj, rdfsComment, quad.String(e.Definition))
	}
	for _, an := range e.Annotations {
		b.annotation(subj, an)
	}
	for _, at := range e.Attributes {
		b.attribute(e, subj, at)
	}
	for _, ax := range e.Axioms {
		b.axiom(e, subj, ax)
	}
}

func (b *builder) annotation(subj quad.Value, an graph.Annotation) {
	pred, ok := b.ctx.Resolve(an.Property).(quad.IRI)
	if !ok {
		return
	}
	var obj quad.Value
	if an.Lang != "" {
		obj = quad.LangString{Value: quad.String(an.Value), Lang: an.Lang}
	} else {
		obj = quad.String(an.Value)
	}
	b.add(subj, pred, obj)
}

// attribute lowers an entity attribute. On a class it synthesizes a
// data property with the class as domain; on a property it asserts a
// property characteristic.
func (b *builder) attribute(e *graph.Entity, subj quad.Value, at graph.Attribute) {
	switch {
	case e.Kind == graph.KindClass:
		prop, ok := b.ctx.Resolve(sanitizeName(at.Name)).(quad.IRI)
		if !ok {
			return
		}
		b.declareOnce(prop, quad.IRI(owl.DatatypeProperty))
		b.add(prop, quad.IRI(rdfs.Domain).Full(), subj)
		b.add(prop, quad.IRI(rdfs.Range).Full(), b.datatype(at.Type))
	case e.Kind.IsProperty():
		char, ok := characteristics[normalize(at.Name)]
		if !ok {
			clog.Warningf("translate: unknown characteristic %q on property %q", at.Name, e.Label)
			return
		}
		b.add(subj, rdfType, char)
	}
}

func (b *builder) datatype(name string) quad.IRI {
	if dt, ok := datatypes[normalize(name)]; ok {
		return dt
	}
	if strings.Contains(name, ":") {
		if iri, ok := b.ctx.Resolve(name).(quad.IRI); ok {
			return iri
		}
	}
	return quad.IRI(xsd.NS + "string")
}

// relation lowers a typed edge. The three structural labels map to
// their vocabulary predicates; any other label becomes a property
// whose kind is inferred from the target entity, declared once.
func (b *builder) relation(r *graph.Relation) {
	if r.Inferred {
		// Inferred edges mirror information the axioms already state.
		return
	}
	src, okS := b.model.Entity(r.Source)
	dst, okT := b.model.Entity(r.Target)
	if !okS || !okT {
		clog.Warningf("translate: relation %q connects unknown entities %q -> %q", r.Label, r.Source, r.Target)
		return
	}
	subj, obj := b.ref(src), b.ref(dst)
	switch normalize(r.Label) {
	case "type", "a":
		b.add(subj, rdfType, obj)
		return
	case "subclassof":
		b.add(subj, quad.IRI(rdfs.SubClassOf).Full(), obj)
		return
	case "disjointwith":
		b.add(subj, quad.IRI(owl.DisjointWith), obj)
		return
	}
	pred, ok := b.ctx.Resolve(sanitizeName(r.Label)).(quad.IRI)
	if !ok {
		return
	}
	propType := quad.IRI(owl.ObjectProperty)
	if dst.Kind == graph.KindDatatype {
		propType = quad.IRI(owl.DatatypeProperty)
	}
	b.declareOnce(pred, propType)
	b.add(subj, pred, obj)
}

// declareOnce emits a property type declaration the first time the
// resource is seen.
func (b *builder) declareOnce(prop quad.IRI, typ quad.IRI) {
	if _, ok := b.declared[prop]; ok {
		return
	}
	b.declared[prop] = struct{}{}
	b.add(prop, rdfType, typ)
}

// ref returns the canonical resource reference for an entity.
func (b *builder) ref(e *graph.Entity) quad.Value {
	return b.ctx.Resolve(sanitizeName(e.Name()))
}

// add appends a triple, dropping exact duplicates so an edge and an
// equivalent axiom never state the same fact twice.
func (b *builder) add(s quad.Value, p quad.IRI, o quad.Value) {
	key := s.String() + "\x00" + p.String() + "\x00" + o.String()
	if _, ok := b.seen[key]; ok {
		return
	}
	b.seen[key] = struct{}{}
	b.triples = append(b.triples, quad.Quad{Subject: s, Predicate: p, Object: o})
}

func (b *builder) addAll(quads []quad.Quad) {
	for _, q := range quads {
		p, _ := q.Predicate.(quad.IRI)
		b.add(q.Subject, p, q.Object)
	}
}

// sanitizeName makes a display label usable as an IRI local name.
func sanitizeName(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<") || strings.HasPrefix(s, `"`) {
		return s
	}
	return strings.Join(strings.Fields(s), "_")
}

func normalize(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		}
	}
	return sb.String()
}

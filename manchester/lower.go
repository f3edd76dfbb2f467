// Package manchester parses the constrained Manchester class
// expression syntax used for inline axioms (`prop some Class`,
// `A and B`, `not C`, cardinality restrictions, nested parentheses)
// and lowers each expression to RDF triples.
//
// Parsing is lenient: any structurally invalid fragment degrades to a
// canonicalized named resource for the raw text. Ontology authoring
// has to keep working on partially specified models, so there is no
// fatal parse error on this path.
package manchester

import (
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/xsd"

	"github.com/ontograph/ontograph/clog"
	"github.com/ontograph/ontograph/voc/owl"
)

var (
	rdfType  = quad.IRI(rdf.Type).Full()
	rdfFirst = quad.IRI(rdf.First).Full()
	rdfRest  = quad.IRI(rdf.Rest).Full()
	rdfNil   = quad.IRI(rdf.Nil).Full()

	boolTrue = quad.TypedString{Value: "true", Type: quad.IRI(xsd.Boolean).Full()}
)

// Parse lowers one class expression to a resource reference plus the
// triples describing its compound structure. Named tokens produce no
// triples; every intersection, union, complement and restriction
// allocates one fresh blank node from the context and emits triples
// under it.
func Parse(expr string, ctx *Context) (quad.Value, []quad.Quad) {
	if ctx.Blank == nil {
		ctx.Blank = NewBlankNodes()
	}
	var out []quad.Quad
	ref := lower(parseExpr(expr), ctx, &out)
	return ref, out
}

// List chains the given references into an rdf:first/rdf:rest
// collection, returning its head and the emitted triples. It backs the
// list-valued axioms (unionOf, hasKey, propertyChainAxiom, ...).
func List(refs []quad.Value, ctx *Context) (quad.Value, []quad.Quad) {
	if ctx.Blank == nil {
		ctx.Blank = NewBlankNodes()
	}
	var out []quad.Quad
	head := emitRDFList(refs, ctx, &out)
	return head, out
}

func lower(e Expr, ctx *Context, out *[]quad.Quad) quad.Value {
	switch e := e.(type) {
	case NamedExpr:
		return ctx.Resolve(e.Name)
	case AndExpr:
		return lowerList(e.Operands, quad.IRI(owl.IntersectionOf), ctx, out)
	case OrExpr:
		return lowerList(e.Operands, quad.IRI(owl.UnionOf), ctx, out)
	case NotExpr:
		node := ctx.Blank.Next()
		op := lower(e.Operand, ctx, out)
		emit(out, node, quad.IRI(owl.ComplementOf), op)
		return node
	case RestrictionExpr:
		return lowerRestriction(e, ctx, out)
	}
	return quad.IRI("")
}

func lowerList(operands []Expr, pred quad.IRI, ctx *Context, out *[]quad.Quad) quad.Value {
	node := ctx.Blank.Next()
	refs := make([]quad.Value, 0, len(operands))
	for _, op := range operands {
		refs = append(refs, lower(op, ctx, out))
	}
	emit(out, node, pred, emitRDFList(refs, ctx, out))
	return node
}

// emitRDFList chains the member references into an rdf:first/rdf:rest
// collection and returns its head.
func emitRDFList(refs []quad.Value, ctx *Context, out *[]quad.Quad) quad.Value {
	if len(refs) == 0 {
		return rdfNil
	}
	head := ctx.Blank.Next()
	cell := head
	for i, ref := range refs {
		emit(out, cell, rdfFirst, ref)
		if i == len(refs)-1 {
			emit(out, cell, rdfRest, rdfNil)
			break
		}
		next := ctx.Blank.Next()
		emit(out, cell, rdfRest, next)
		cell = next
	}
	return head
}

func lowerRestriction(r RestrictionExpr, ctx *Context, out *[]quad.Quad) quad.Value {
	node := ctx.Blank.Next()
	emit(out, node, rdfType, quad.IRI(owl.Restriction))
	emit(out, node, quad.IRI(owl.OnProperty), ctx.Resolve(r.Property))

	switch r.Kind {
	case Some:
		if strings.EqualFold(r.Filler, "Self") {
			emit(out, node, quad.IRI(owl.HasSelf), boolTrue)
			break
		}
		emit(out, node, quad.IRI(owl.SomeValuesFrom), lower(parseExpr(r.Filler), ctx, out))
	case Only:
		emit(out, node, quad.IRI(owl.AllValuesFrom), lower(parseExpr(r.Filler), ctx, out))
	case ValueOf:
		emit(out, node, quad.IRI(owl.HasValue), ctx.Resolve(r.Filler))
	case SelfOf:
		emit(out, node, quad.IRI(owl.HasSelf), boolTrue)
	case Min, Max, Exactly:
		lowerCardinality(r, node, ctx, out)
	}
	return node
}

// cardinalityPredicates maps a cardinality keyword to its unqualified
// and qualified predicates.
var cardinalityPredicates = map[RestrictionKind][2]quad.IRI{
	Min:     {quad.IRI(owl.MinCardinality), quad.IRI(owl.MinQualifiedCardinality)},
	Max:     {quad.IRI(owl.MaxCardinality), quad.IRI(owl.MaxQualifiedCardinality)},
	Exactly: {quad.IRI(owl.Cardinality), quad.IRI(owl.QualifiedCardinality)},
}

func lowerCardinality(r RestrictionExpr, node quad.BNode, ctx *Context, out *[]quad.Quad) {
	n, err := strconv.Atoi(r.Cardinality)
	if err != nil {
		// A non-numeric argument leaves a bare restriction rather
		// than failing the translation.
		clog.Warningf("manchester: ignoring non-numeric cardinality %q on %q", r.Cardinality, r.Property)
		return
	}
	card := quad.TypedString{
		Value: quad.String(strconv.Itoa(n)),
		Type:  quad.IRI(xsd.NS + "nonNegativeInteger"),
	}
	preds := cardinalityPredicates[r.Kind]
	if r.Qualifier == "" {
		emit(out, node, preds[0], card)
		return
	}
	emit(out, node, preds[1], card)
	qualifier := lower(parseExpr(r.Qualifier), ctx, out)
	onPred := quad.IRI(owl.OnClass)
	if isDatatype(qualifier) {
		onPred = quad.IRI(owl.OnDataRange)
	}
	emit(out, node, onPred, qualifier)
}

// isDatatype reports whether the qualifier reference points into the
// XSD namespace, which selects onDataRange over onClass.
func isDatatype(v quad.Value) bool {
	iri, ok := v.(quad.IRI)
	return ok && strings.HasPrefix(string(iri), xsd.NS)
}

func emit(out *[]quad.Quad, s quad.Value, p quad.IRI, o quad.Value) {
	*out = append(*out, quad.Quad{Subject: s, Predicate: p, Object: o})
}

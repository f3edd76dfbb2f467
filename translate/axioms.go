package translate

import (
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdfs"

	"github.com/ontograph/ontograph/clog"
	"github.com/ontograph/ontograph/graph"
	"github.com/ontograph/ontograph/manchester"
	"github.com/ontograph/ontograph/voc/owl"
)

// axiom dispatches one inline axiom on its normalized kind. The switch
// is exhaustive over the closed AxiomKind set; the restriction arm is
// the single lenient fallback for names the editor lets users invent.
func (b *builder) axiom(e *graph.Entity, subj quad.Value, ax graph.Axiom) {
	switch ax.Kind() {
	case graph.AxiomSubClassOf:
		ref := b.parse(ax.Expression)
		b.add(subj, quad.IRI(rdfs.SubClassOf).Full(), ref)
	case graph.AxiomSuperClassOf:
		ref := b.parse(ax.Expression)
		b.add(ref, quad.IRI(rdfs.SubClassOf).Full(), subj)
	case graph.AxiomDisjointWith:
		b.add(subj, quad.IRI(owl.DisjointWith), b.parse(ax.Expression))
	case graph.AxiomEquivalentTo:
		b.add(subj, quad.IRI(owl.EquivalentClass), b.parse(ax.Expression))
	case graph.AxiomUnionOf:
		b.add(subj, quad.IRI(owl.UnionOf), b.list(ax.Expression))
	case graph.AxiomIntersectionOf:
		b.add(subj, quad.IRI(owl.IntersectionOf), b.list(ax.Expression))
	case graph.AxiomOneOf:
		b.add(subj, quad.IRI(owl.OneOf), b.list(ax.Expression))
	case graph.AxiomComplementOf:
		// A single operand stays a direct reference; several become a
		// list like the other collection axioms.
		if members := strings.Fields(ax.Expression); len(members) == 1 {
			b.add(subj, quad.IRI(owl.ComplementOf), b.ctx.Resolve(members[0]))
		} else {
			b.add(subj, quad.IRI(owl.ComplementOf), b.list(ax.Expression))
		}
	case graph.AxiomDisjointUnionOf:
		b.add(subj, quad.IRI(owl.DisjointUnionOf), b.list(ax.Expression))
	case graph.AxiomHasKey:
		b.add(subj, quad.IRI(owl.HasKey), b.list(ax.Expression))
	case graph.AxiomSameAs:
		b.each(subj, quad.IRI(owl.SameAs), ax.Expression)
	case graph.AxiomDifferentFrom:
		b.each(subj, quad.IRI(owl.DifferentFrom), ax.Expression)
	case graph.AxiomSubPropertyOf:
		b.each(subj, quad.IRI(rdfs.SubPropertyOf).Full(), ax.Expression)
	case graph.AxiomInverseOf:
		b.each(subj, quad.IRI(owl.InverseOf), ax.Expression)
	case graph.AxiomDomain:
		b.add(subj, quad.IRI(rdfs.Domain).Full(), b.parse(ax.Expression))
	case graph.AxiomRange:
		b.add(subj, quad.IRI(rdfs.Range).Full(), b.parse(ax.Expression))
	case graph.AxiomPropertyChain:
		b.add(subj, quad.IRI(owl.PropertyChainAxiom), b.list(ax.Expression))
	case graph.AxiomRestriction:
		clog.Warningf("translate: axiom %q on %q read as sub-class restriction", ax.Name, e.Label)
		ref := b.parse(ax.Expression)
		b.add(subj, quad.IRI(rdfs.SubClassOf).Full(), ref)
	}
}

// parse lowers a class expression through the manchester parser,
// keeping its emitted triples.
func (b *builder) parse(expr string) quad.Value {
	ref, quads := manchester.Parse(expr, b.ctx)
	b.addAll(quads)
	return ref
}

// list resolves a whitespace-separated member list into an RDF
// collection.
func (b *builder) list(expr string) quad.Value {
	fields := strings.Fields(expr)
	refs := make([]quad.Value, 0, len(fields))
	for _, f := range fields {
		refs = append(refs, b.ctx.Resolve(f))
	}
	head, quads := manchester.List(refs, b.ctx)
	b.addAll(quads)
	return head
}

// each emits one triple per whitespace-separated member.
func (b *builder) each(subj quad.Value, pred quad.IRI, expr string) {
	for _, f := range strings.Fields(expr) {
		b.add(subj, pred, b.ctx.Resolve(f))
	}
}

package manchester

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
	"github.com/cayleygraph/quad/voc/xsd"

	"github.com/ontograph/ontograph/voc/owl"
)

// BlankNodes allocates blank node identifiers for one translation
// pass. A fresh allocator is created per pass so repeated or
// concurrent translations cannot interfere; it is never package
// state.
type BlankNodes struct {
	n int
}

// NewBlankNodes returns an allocator starting at zero.
func NewBlankNodes() *BlankNodes {
	return &BlankNodes{}
}

// NewBlankNodesAt returns an allocator with an injected start value.
func NewBlankNodesAt(n int) *BlankNodes {
	return &BlankNodes{n: n}
}

// Next allocates the next blank node.
func (b *BlankNodes) Next() quad.BNode {
	id := quad.BNode(fmt.Sprintf("b%d", b.n))
	b.n++
	return id
}

// Context carries everything one parse needs: the default prefix and
// base IRI bare names resolve against, any extra namespace prefixes,
// and the blank node allocator for the current translation pass.
type Context struct {
	Prefix     string
	Base       string
	Namespaces map[string]string
	Blank      *BlankNodes
}

// NewContext returns a context with a fresh blank node allocator.
func NewContext(prefix, base string) *Context {
	return &Context{Prefix: prefix, Base: base, Blank: NewBlankNodes()}
}

// wellKnown maps normalized vocabulary local names to their standard
// vocabulary IRIs.
var wellKnown = map[string]quad.IRI{
	"type":            quad.IRI(rdf.Type).Full(),
	"label":           quad.IRI(rdfs.Label).Full(),
	"comment":         quad.IRI(rdfs.Comment).Full(),
	"subclassof":      quad.IRI(rdfs.SubClassOf).Full(),
	"subpropertyof":   quad.IRI(rdfs.SubPropertyOf).Full(),
	"domain":          quad.IRI(rdfs.Domain).Full(),
	"range":           quad.IRI(rdfs.Range).Full(),
	"disjointwith":    quad.IRI(owl.DisjointWith),
	"equivalentclass": quad.IRI(owl.EquivalentClass),
	"sameas":          quad.IRI(owl.SameAs),
	"differentfrom":   quad.IRI(owl.DifferentFrom),
	"inverseof":       quad.IRI(owl.InverseOf),
	"thing":           quad.IRI(owl.Thing),
	"nothing":         quad.IRI(owl.Nothing),
}

// Resolve canonicalizes a raw token into a resource reference.
// Resolution is pure: the same token always yields the same value
// within one context.
//
// Full IRIs in angle brackets pass through unchanged, recognized
// vocabulary words map to their standard namespace, known prefixes
// expand, quoted strings and integers become literals, and a bare
// word resolves against the default prefix and base IRI.
func (c *Context) Resolve(token string) quad.Value {
	token = strings.TrimSpace(token)
	switch {
	case token == "":
		return quad.IRI(c.Base)
	case strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">"):
		return quad.IRI(token[1 : len(token)-1])
	case strings.HasPrefix(token, `"`):
		return parseLiteral(token, c)
	}
	if iri, ok := wellKnown[normalizeWord(token)]; ok {
		return iri
	}
	if _, err := strconv.Atoi(token); err == nil {
		return quad.TypedString{Value: quad.String(token), Type: quad.IRI(xsd.NS + "integer")}
	}
	if i := strings.Index(token, ":"); i > 0 {
		pref, local := token[:i], token[i+1:]
		if ns, ok := c.Namespaces[pref]; ok {
			return quad.IRI(ns + local)
		}
		if full := voc.FullIRI(token); full != token {
			return quad.IRI(full)
		}
		// Unknown prefix: pass the token through as-is.
		return quad.IRI(token)
	}
	return quad.IRI(c.join(token))
}

func (c *Context) join(word string) string {
	base := c.Base
	if base == "" {
		return word
	}
	if strings.HasSuffix(base, "#") || strings.HasSuffix(base, "/") {
		return base + word
	}
	return base + "#" + word
}

// parseLiteral reads a quoted literal with an optional @lang or
// ^^datatype suffix.
func parseLiteral(token string, c *Context) quad.Value {
	end := strings.LastIndex(token, `"`)
	if end <= 0 {
		return quad.String(strings.Trim(token, `"`))
	}
	val := quad.String(token[1:end])
	rest := token[end+1:]
	switch {
	case strings.HasPrefix(rest, "@"):
		return quad.LangString{Value: val, Lang: rest[1:]}
	case strings.HasPrefix(rest, "^^"):
		dt, _ := c.Resolve(rest[2:]).(quad.IRI)
		return quad.TypedString{Value: val, Type: dt}
	}
	return val
}

func normalizeWord(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

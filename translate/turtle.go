package translate

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"
)

// WriteTurtle serializes the set as a Turtle-like stream: the prefix
// table first, then one line per triple in emission order. Blank nodes
// render as _:bN, so an unchanged model always serializes to the same
// bytes.
func (ts *TripleSet) WriteTurtle(w io.Writer) error {
	bw := bufio.NewWriter(w)
	prefixes := make([]string, 0, len(ts.Namespaces))
	for p := range ts.Namespaces {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		fmt.Fprintf(bw, "@prefix %s: <%s> .\n", p, ts.Namespaces[p])
	}
	if len(ts.Triples) > 0 {
		fmt.Fprintln(bw)
	}
	for _, t := range ts.Triples {
		fmt.Fprintf(bw, "%s %s %s .\n", ts.term(t.Subject), ts.term(t.Predicate), ts.term(t.Object))
	}
	return bw.Flush()
}

// term renders one node, shortening IRIs through the prefix table
// when the remainder is a plain local name.
func (ts *TripleSet) term(v quad.Value) string {
	iri, ok := v.(quad.IRI)
	if !ok {
		return v.String()
	}
	s := string(iri)
	best, bestNS := "", ""
	for p, ns := range ts.Namespaces {
		if strings.HasPrefix(s, ns) && len(ns) > len(bestNS) {
			best, bestNS = p, ns
		}
	}
	if bestNS != "" {
		if local := s[len(bestNS):]; isLocalName(local) {
			return best + ":" + local
		}
	}
	return iri.String()
}

func isLocalName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

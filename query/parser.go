package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc"
	"github.com/cayleygraph/quad/voc/rdf"

	_ "github.com/cayleygraph/quad/voc/rdfs"
	_ "github.com/cayleygraph/quad/voc/xsd"

	"github.com/ontograph/ontograph/clog"
	_ "github.com/ontograph/ontograph/voc/owl"
)

// parsedQuery is the outcome of parsing one query string.
type parsedQuery struct {
	star       bool
	distinct   bool
	projection []string
	patterns   []Pattern
	limit      int
	vars       []string // encounter order across all patterns
	namespaces map[string]string
}

// parser is a cursor over the query text.
type parser struct {
	input  string
	pos    int
	length int
}

func newParser(input string) *parser {
	return &parser{input: input, length: len(input)}
}

// defaultNamespaces seeds the prefix table from the registered
// vocabularies (rdf, rdfs, owl, xsd via the blank imports above).
func defaultNamespaces() map[string]string {
	ns := make(map[string]string)
	for _, n := range voc.List() {
		ns[strings.TrimSuffix(n.Prefix, ":")] = n.Full
	}
	return ns
}

// parse reads the full query. extra namespaces (usually the translated
// set's prefix table) merge over the vocabulary defaults; PREFIX
// declarations in the query text override both.
func parse(qry string, extra map[string]string) (*parsedQuery, error) {
	pq := &parsedQuery{limit: -1, namespaces: defaultNamespaces()}
	for p, ns := range extra {
		pq.namespaces[p] = ns
	}

	p := newParser(stripComments(qry))
	for p.matchKeyword("PREFIX") {
		if err := p.readPrefix(pq.namespaces); err != nil {
			return nil, err
		}
	}
	if !p.matchKeyword("SELECT") {
		return nil, fmt.Errorf("%w: missing SELECT clause", ErrMalformedQuery)
	}
	pq.distinct = p.matchKeyword("DISTINCT")
	for {
		p.skipWhitespace()
		if p.pos >= p.length {
			break
		}
		if p.input[p.pos] == '*' {
			pq.star = true
			p.pos++
			continue
		}
		if p.input[p.pos] != '?' {
			break
		}
		pq.projection = append(pq.projection, p.readToken()[1:])
	}
	if !pq.star && len(pq.projection) == 0 {
		return nil, fmt.Errorf("%w: no projected variables", ErrMalformedQuery)
	}

	// The WHERE keyword is optional; the block is located by its
	// braces alone.
	p.matchKeyword("WHERE")
	block, ok := p.readBlock()
	if !ok {
		return nil, fmt.Errorf("%w: missing { ... } pattern block", ErrMalformedQuery)
	}
	pq.parseBlock(block)

	if p.matchKeyword("LIMIT") {
		if n, err := strconv.Atoi(p.readToken()); err == nil {
			pq.limit = n
		}
	}
	return pq, nil
}

// parseBlock splits the pattern block on statement separators and
// turns every well-formed three-term group into a Pattern. Malformed
// groups are dropped, not fatal.
func (pq *parsedQuery) parseBlock(block string) {
	for _, stmt := range splitStatements(block) {
		fields := strings.Fields(stmt)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			clog.Warningf("query: dropping pattern with %d term(s): %q", len(fields), strings.TrimSpace(stmt))
			continue
		}
		var pat Pattern
		for i, f := range fields {
			pat[i] = pq.term(f)
		}
		pq.patterns = append(pq.patterns, pat)
	}
}

// term reads one pattern term: a ?variable, the rdf:type shorthand
// `a`, a full IRI, a quoted literal, or a prefixed name. A name with
// an unknown prefix passes through as a raw token.
func (pq *parsedQuery) term(tok string) Term {
	if strings.HasPrefix(tok, "?") && len(tok) > 1 {
		name := tok[1:]
		pq.recordVar(name)
		return Term{Variable: name}
	}
	if tok == "a" {
		return Term{Value: quad.IRI(rdf.Type).Full()}
	}
	if strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">") {
		return Term{Value: quad.IRI(tok[1 : len(tok)-1])}
	}
	if strings.HasPrefix(tok, `"`) {
		return Term{Value: quad.String(strings.Trim(tok, `"`))}
	}
	if i := strings.Index(tok, ":"); i >= 0 {
		if ns, ok := pq.namespaces[tok[:i]]; ok {
			return Term{Value: quad.IRI(ns + tok[i+1:])}
		}
	}
	return Term{Value: quad.Raw(tok)}
}

func (pq *parsedQuery) recordVar(name string) {
	for _, v := range pq.vars {
		if v == name {
			return
		}
	}
	pq.vars = append(pq.vars, name)
}

// readPrefix reads `name: <iri>` after the PREFIX keyword.
func (p *parser) readPrefix(into map[string]string) error {
	name := strings.TrimSuffix(p.readToken(), ":")
	iri := p.readToken()
	if name == "" || !strings.HasPrefix(iri, "<") || !strings.HasSuffix(iri, ">") {
		return fmt.Errorf("%w: invalid PREFIX declaration near offset %d", ErrMalformedQuery, p.pos)
	}
	into[name] = iri[1 : len(iri)-1]
	return nil
}

func (p *parser) skipWhitespace() {
	for p.pos < p.length {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// matchKeyword consumes the keyword when it appears next,
// case-insensitively and only at a word boundary.
func (p *parser) matchKeyword(kw string) bool {
	p.skipWhitespace()
	end := p.pos + len(kw)
	if end > p.length || !strings.EqualFold(p.input[p.pos:end], kw) {
		return false
	}
	if end < p.length && isWordByte(p.input[end]) {
		return false
	}
	p.pos = end
	return true
}

// readToken reads up to the next whitespace or brace.
func (p *parser) readToken() string {
	p.skipWhitespace()
	start := p.pos
	for p.pos < p.length {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r', '{', '}':
			return p.input[start:p.pos]
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

// readBlock extracts the first balanced { ... } block from the cursor
// position onward.
func (p *parser) readBlock() (string, bool) {
	for p.pos < p.length && p.input[p.pos] != '{' {
		p.pos++
	}
	if p.pos >= p.length {
		return "", false
	}
	depth := 0
	start := p.pos + 1
	for ; p.pos < p.length; p.pos++ {
		switch p.input[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				block := p.input[start:p.pos]
				p.pos++
				return block, true
			}
		}
	}
	return "", false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

// stripComments removes `#` line comments, leaving hashes inside IRI
// brackets and string literals alone.
func stripComments(s string) string {
	var b strings.Builder
	inIRI, inString := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '<':
			if !inString {
				inIRI = true
			}
		case '>':
			if !inString {
				inIRI = false
			}
		case '"':
			if !inIRI {
				inString = !inString
			}
		case '#':
			if !inIRI && !inString {
				for i < len(s) && s[i] != '\n' {
					i++
				}
				b.WriteByte('\n')
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// splitStatements splits a pattern block on `.` separators, skipping
// dots inside IRI brackets and string literals.
func splitStatements(block string) []string {
	var (
		out      []string
		inIRI    bool
		inString bool
		start    int
	)
	for i := 0; i < len(block); i++ {
		switch block[i] {
		case '<':
			if !inString {
				inIRI = true
			}
		case '>':
			if !inString {
				inIRI = false
			}
		case '"':
			if !inIRI {
				inString = !inString
			}
		case '.':
			if !inIRI && !inString {
				out = append(out, block[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, block[start:])
	return out
}

package manchester

import (
	"strings"
)

// RestrictionKind selects the property-restriction production.
type RestrictionKind int

const (
	Some RestrictionKind = iota
	Only
	ValueOf
	SelfOf
	Min
	Max
	Exactly
)

var restrictionKeywords = map[string]RestrictionKind{
	"some":    Some,
	"only":    Only,
	"value":   ValueOf,
	"self":    SelfOf,
	"min":     Min,
	"max":     Max,
	"exactly": Exactly,
}

// Expr is a parsed class expression. It lives only for the duration of
// one Parse call: it is lowered to triples immediately and discarded.
type Expr interface {
	isExpr()
}

// NamedExpr is a bare named class, individual or literal token.
type NamedExpr struct {
	Name string
}

// AndExpr is an intersection of operand expressions.
type AndExpr struct {
	Operands []Expr
}

// OrExpr is a union of operand expressions.
type OrExpr struct {
	Operands []Expr
}

// NotExpr is a complement.
type NotExpr struct {
	Operand Expr
}

// RestrictionExpr is a property restriction. Filler is empty for a
// self restriction; Cardinality and Qualifier are set only for the
// cardinality kinds.
type RestrictionExpr struct {
	Property    string
	Kind        RestrictionKind
	Filler      string
	Cardinality string
	Qualifier   string
}

func (NamedExpr) isExpr()       {}
func (AndExpr) isExpr()         {}
func (OrExpr) isExpr()          {}
func (NotExpr) isExpr()         {}
func (RestrictionExpr) isExpr() {}

// parseExpr parses one expression level, highest-precedence
// productions last: or is split first, then and, then not, then the
// restriction production, then a bare name. All splitting is depth
// tracked, so operators inside parentheses never split the outer
// expression, and unbalanced input is tolerated rather than rejected.
func parseExpr(s string) Expr {
	s = stripOuter(strings.TrimSpace(s))
	if parts := splitKeyword(s, "or"); len(parts) > 1 {
		ops := make([]Expr, 0, len(parts))
		for _, p := range parts {
			ops = append(ops, parseExpr(p))
		}
		return OrExpr{Operands: ops}
	}
	if parts := splitKeyword(s, "and"); len(parts) > 1 {
		ops := make([]Expr, 0, len(parts))
		for _, p := range parts {
			ops = append(ops, parseExpr(p))
		}
		return AndExpr{Operands: ops}
	}
	if rest, ok := cutKeyword(s, "not"); ok {
		return NotExpr{Operand: parseExpr(rest)}
	}
	if r, ok := parseRestriction(s); ok {
		return r
	}
	return NamedExpr{Name: s}
}

// parseRestriction matches `<property> <keyword> <argument...>` when
// the token after the sentence-initial one is a restriction keyword.
func parseRestriction(s string) (Expr, bool) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return nil, false
	}
	kind, ok := restrictionKeywords[strings.ToLower(fields[1])]
	if !ok {
		return nil, false
	}
	r := RestrictionExpr{Property: fields[0], Kind: kind}
	args := fields[2:]
	switch kind {
	case Some, Only, ValueOf:
		r.Filler = strings.Join(args, " ")
	case SelfOf:
		// No argument.
	case Min, Max, Exactly:
		if len(args) > 0 {
			r.Cardinality = args[0]
			r.Qualifier = strings.Join(args[1:], " ")
		}
	}
	return r, true
}

// stripOuter removes parentheses that wrap the whole expression,
// leaving partial groups alone.
func stripOuter(s string) string {
	for strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		depth := 0
		wraps := true
		for i, r := range s {
			switch r {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 && i != len(s)-1 {
					wraps = false
				}
			}
		}
		if !wraps || depth != 0 {
			return s
		}
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// splitKeyword splits s on a standalone keyword at parenthesis depth
// zero. The scan only tracks depth, so extra or missing parentheses
// shift the depth but never produce an error.
func splitKeyword(s, keyword string) []string {
	var parts []string
	depth := 0
	last := 0
	for _, tok := range scanTokens(s) {
		switch tok.text {
		case "(":
			depth++
		case ")":
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 && strings.EqualFold(tok.text, keyword) {
				parts = append(parts, strings.TrimSpace(s[last:tok.start]))
				last = tok.end
			}
		}
	}
	if len(parts) == 0 {
		return []string{s}
	}
	parts = append(parts, strings.TrimSpace(s[last:]))
	return parts
}

// cutKeyword strips a leading unary keyword.
func cutKeyword(s, keyword string) (string, bool) {
	fields := strings.Fields(s)
	if len(fields) >= 2 && strings.EqualFold(fields[0], keyword) {
		return strings.TrimSpace(s[len(fields[0]):]), true
	}
	return s, false
}

type token struct {
	text       string
	start, end int
}

// scanTokens yields whitespace-delimited words plus single
// parenthesis tokens with their byte offsets.
func scanTokens(s string) []token {
	var out []token
	i := 0
	for i < len(s) {
		switch {
		case s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r':
			i++
		case s[i] == '(' || s[i] == ')':
			out = append(out, token{text: s[i : i+1], start: i, end: i + 1})
			i++
		default:
			j := i
			for j < len(s) && !strings.ContainsRune(" \t\n\r()", rune(s[j])) {
				j++
			}
			out = append(out, token{text: s[i:j], start: i, end: j})
			i = j
		}
	}
	return out
}

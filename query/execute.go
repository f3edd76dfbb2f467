package query

import (
	"strings"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/ontograph/ontograph/clog"
)

// Execute parses the query and evaluates it against the triple set.
// The namespaces argument (usually the translated set's prefix table)
// extends the default vocabulary prefixes for both prefixed names in
// the query and display shortening in the result rows.
func Execute(qry string, triples []quad.Quad, namespaces map[string]string) (*Result, error) {
	start := time.Now()
	pq, err := parse(qry, namespaces)
	if err != nil {
		return nil, err
	}

	// Left-deep nested-loop join: one empty solution grows through
	// the pattern list. Editor-scale graphs keep this comfortably
	// fast; it is deliberately not an optimizer.
	solutions := []Solution{{}}
	for _, pat := range pq.patterns {
		var next []Solution
		for _, sol := range solutions {
			for _, t := range triples {
				if extended, ok := matchPattern(pat, t, sol, pq.namespaces); ok {
					next = append(next, extended)
				}
			}
		}
		solutions = next
		if len(solutions) == 0 {
			break
		}
	}
	if clog.V(2) {
		clog.Infof("query: %d pattern(s) over %d triple(s) -> %d solution(s)", len(pq.patterns), len(triples), len(solutions))
	}

	columns := pq.projection
	if pq.star {
		columns = pq.vars
	}

	rows := make([]map[string]string, 0, len(solutions))
	seen := make(map[string]struct{})
solutions:
	for _, sol := range solutions {
		if pq.limit >= 0 && len(rows) >= pq.limit {
			break
		}
		row := make(map[string]string, len(columns))
		for _, c := range columns {
			v, ok := sol[c]
			if !ok && !pq.star {
				// Inner-join semantics: a requested variable the
				// solution never bound drops the whole row.
				continue solutions
			}
			row[c] = v
		}
		if pq.distinct {
			key := distinctKey(row, columns)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		rows = append(rows, row)
	}

	return &Result{
		Columns:       columns,
		Rows:          rows,
		ExecutionTime: time.Since(start),
	}, nil
}

// matchPattern checks one triple against one pattern under the current
// solution, returning the extended solution on a match.
func matchPattern(pat Pattern, t quad.Quad, sol Solution, ns map[string]string) (Solution, bool) {
	values := [3]quad.Value{t.Subject, t.Predicate, t.Object}
	extended := make(Solution, len(sol)+3)
	for k, v := range sol {
		extended[k] = v
	}
	for i, term := range pat {
		if term.IsVariable() {
			display := displayValue(values[i], ns)
			if prev, ok := extended[term.Variable]; ok {
				if prev != display {
					return nil, false
				}
				continue
			}
			extended[term.Variable] = display
			continue
		}
		if !valueMatches(term.Value, values[i]) {
			return nil, false
		}
	}
	return extended, true
}

// valueMatches compares a bound term against a triple value. Literals
// compare with and without their surrounding quotes, tolerating
// representation differences between the query text and the store.
func valueMatches(a, b quad.Value) bool {
	if a == b {
		return true
	}
	sa, sb := a.String(), b.String()
	if sa == sb {
		return true
	}
	return strings.Trim(sa, `"`) == strings.Trim(sb, `"`)
}

// displayValue renders a value for a result row: IRIs shorten through
// the prefix table, literals lose their surrounding quotes.
func displayValue(v quad.Value, ns map[string]string) string {
	switch v := v.(type) {
	case quad.IRI:
		s := string(v)
		best, bestNS := "", ""
		for p, full := range ns {
			if strings.HasPrefix(s, full) && len(full) > len(bestNS) {
				best, bestNS = p, full
			}
		}
		if bestNS != "" && len(s) > len(bestNS) {
			return best + ":" + s[len(bestNS):]
		}
		return s
	case quad.BNode:
		return v.String()
	case quad.String:
		return string(v)
	case quad.LangString:
		return string(v.Value)
	case quad.TypedString:
		return string(v.Value)
	default:
		return v.String()
	}
}

func distinctKey(row map[string]string, columns []string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = row[c]
	}
	return strings.Join(parts, "\x1f")
}

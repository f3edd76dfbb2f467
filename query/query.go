// Copyright 2024 The Ontograph Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package query implements a small SPARQL-subset engine over an
// in-memory triple set: PREFIX declarations, SELECT with optional
// DISTINCT and an explicit variable list or *, a single pattern block,
// and LIMIT. Patterns are evaluated with a left-deep nested-loop join.
//
// Unlike the lenient translation path, a query missing its projection
// clause or pattern block fails with ErrMalformedQuery: a query is a
// question, and a question the engine cannot read has no best-effort
// answer.
package query

import (
	"errors"
	"time"

	"github.com/cayleygraph/quad"
)

// ErrMalformedQuery is the only fatal query error. Everything else
// degrades: unknown prefixes pass through as literal tokens and empty
// matches yield zero rows.
var ErrMalformedQuery = errors.New("query: malformed query")

// Term is one position of a triple pattern: either a variable or a
// bound constant.
type Term struct {
	Variable string
	Value    quad.Value
}

// IsVariable reports whether the term is an unbound variable.
func (t Term) IsVariable() bool { return t.Variable != "" }

// Pattern is a subject-predicate-object triple pattern.
type Pattern [3]Term

// Solution maps variable names to the display strings of the matched
// resources.
type Solution map[string]string

// Result is the tabular answer of one query evaluation.
type Result struct {
	Columns       []string            `json:"columns"`
	Rows          []map[string]string `json:"rows"`
	ExecutionTime time.Duration       `json:"executionTime"`
}

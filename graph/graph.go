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

// Package graph defines the ontology graph model produced by the visual
// editor: typed entities, typed relations between them, and the inline
// axioms and annotations attached to entities.
package graph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the element kind of an entity.
type Kind int

const (
	KindUnknown Kind = iota
	KindClass
	KindIndividual
	KindObjectProperty
	KindDataProperty
	KindDatatype
)

var kindNames = [...]string{
	KindUnknown:        "unknown",
	KindClass:          "class",
	KindIndividual:     "individual",
	KindObjectProperty: "objectProperty",
	KindDataProperty:   "dataProperty",
	KindDatatype:       "datatype",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsProperty reports whether the kind is one of the property kinds.
func (k Kind) IsProperty() bool {
	return k == KindObjectProperty || k == KindDataProperty
}

// KindOf maps an editor kind string to a Kind. Matching is
// case-insensitive and tolerates the editor's older aliases.
func KindOf(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "class", "owlclass":
		return KindClass
	case "individual", "namedindividual":
		return KindIndividual
	case "objectproperty":
		return KindObjectProperty
	case "dataproperty", "datatypeproperty":
		return KindDataProperty
	case "datatype":
		return KindDatatype
	}
	return KindUnknown
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*k = KindOf(s)
	return nil
}

// Attribute is a named characteristic of an entity. On a class it
// describes a data attribute with its datatype; on a property it names
// a property characteristic such as "Functional".
type Attribute struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Axiom is an inline axiom attached to an entity: a display name
// selecting the axiom shape and a raw Manchester-syntax expression.
type Axiom struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
}

// Annotation is an annotation assertion on an entity.
type Annotation struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	Lang     string `json:"language,omitempty"`
}

// Entity is a typed node of the ontology graph.
type Entity struct {
	ID          string       `json:"id"`
	Kind        Kind         `json:"kind"`
	Label       string       `json:"label"`
	IRI         string       `json:"iri,omitempty"`
	Definition  string       `json:"definition,omitempty"`
	Attributes  []Attribute  `json:"attributes,omitempty"`
	Axioms      []Axiom      `json:"axioms,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Name returns the token the entity is referred to by in expressions:
// the explicit IRI when set, the label otherwise.
func (e *Entity) Name() string {
	if e.IRI != "" {
		return e.IRI
	}
	return e.Label
}

// Relation is a typed edge between two entities.
type Relation struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Label    string `json:"label"`
	Inferred bool   `json:"inferred,omitempty"`
}

// Meta carries ontology-level metadata.
type Meta struct {
	Title   string `json:"title,omitempty"`
	IRI     string `json:"iri,omitempty"`
	Version string `json:"version,omitempty"`
}

// Model is the complete graph produced by the editor.
type Model struct {
	Meta      Meta       `json:"meta"`
	Entities  []Entity   `json:"entities"`
	Relations []Relation `json:"relations"`
}

// Entity returns the entity with the given id.
func (m *Model) Entity(id string) (*Entity, bool) {
	for i := range m.Entities {
		if m.Entities[i].ID == id {
			return &m.Entities[i], true
		}
	}
	return nil, false
}

package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadModel decodes a graph model from its JSON wire form.
func LoadModel(r io.Reader) (*Model, error) {
	var m Model
	dec := json.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("graph: cannot decode model: %w", err)
	}
	return &m, nil
}

// LoadModelFile reads a graph model from a JSON file.
func LoadModelFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: cannot open %q: %w", path, err)
	}
	defer f.Close()
	return LoadModel(f)
}

package ontograph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontograph/ontograph/graph"
	"github.com/ontograph/ontograph/translate"
)

func testModel() *graph.Model {
	return &graph.Model{
		Meta: graph.Meta{Title: "Test", IRI: "http://example.org/test"},
		Entities: []graph.Entity{
			{ID: "person", Kind: graph.KindClass, Label: "Person"},
			{ID: "boy", Kind: graph.KindClass, Label: "Boy"},
		},
		Relations: []graph.Relation{
			{Source: "boy", Target: "person", Label: "subClassOf"},
		},
	}
}

func writeModel(t *testing.T, dir string, data string) string {
	t.Helper()
	path := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeModel(t, t.TempDir(), `{
		"meta": {"title": "Test", "iri": "http://example.org/test"},
		"entities": [
			{"id": "person", "kind": "class", "label": "Person"}
		],
		"relations": []
	}`)

	h, err := Load(path, translate.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, h.Set().Triples)
	require.Len(t, h.Model().Entities, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), translate.Options{})
	require.Error(t, err)
}

func TestHandleQuery(t *testing.T) {
	h := NewHandle(testModel(), translate.Options{})

	res, err := h.Query(`SELECT DISTINCT ?class { ?class rdf:type owl:Class }`)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
}

func TestReloadSwapsSet(t *testing.T) {
	dir := t.TempDir()
	path := writeModel(t, dir, `{
		"meta": {"iri": "http://example.org/test"},
		"entities": [{"id": "a", "kind": "class", "label": "A"}],
		"relations": []
	}`)

	h, err := Load(path, translate.Options{})
	require.NoError(t, err)
	before := len(h.Set().Triples)

	require.NoError(t, os.WriteFile(path, []byte(`{
		"meta": {"iri": "http://example.org/test"},
		"entities": [
			{"id": "a", "kind": "class", "label": "A"},
			{"id": "b", "kind": "class", "label": "B"}
		],
		"relations": []
	}`), 0644))
	require.NoError(t, h.Reload())
	require.Greater(t, len(h.Set().Triples), before)
}

func TestReloadKeepsSetOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeModel(t, dir, `{
		"meta": {"iri": "http://example.org/test"},
		"entities": [{"id": "a", "kind": "class", "label": "A"}],
		"relations": []
	}`)

	h, err := Load(path, translate.Options{})
	require.NoError(t, err)
	before := h.Set()

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	require.Error(t, h.Reload())
	require.Equal(t, before, h.Set())
}

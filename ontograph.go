// Package ontograph exposes the semantic backend of the visual
// ontology editor: loading an editor graph, translating it to RDF
// triples and answering queries over the result.
package ontograph

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/ontograph/ontograph/clog"
	"github.com/ontograph/ontograph/graph"
	"github.com/ontograph/ontograph/query"
	"github.com/ontograph/ontograph/translate"
)

// Handle bundles a loaded graph model with its translated triple set.
// The set is rebuilt in place on Reload; a read lock keeps every query
// on a consistent snapshot.
type Handle struct {
	path string
	opts translate.Options

	mu    sync.RWMutex
	model *graph.Model
	set   *translate.TripleSet
}

// Load reads the graph model file and translates it.
func Load(path string, opts translate.Options) (*Handle, error) {
	h := &Handle{path: path, opts: opts}
	if err := h.Reload(); err != nil {
		return nil, err
	}
	return h, nil
}

// NewHandle wraps an already loaded model.
func NewHandle(m *graph.Model, opts translate.Options) *Handle {
	return &Handle{model: m, opts: opts, set: translate.Build(m, opts)}
}

// Reload re-reads the model file and rebuilds the triple set.
func (h *Handle) Reload() error {
	m, err := graph.LoadModelFile(h.path)
	if err != nil {
		return err
	}
	set := translate.Build(m, h.opts)
	h.mu.Lock()
	h.model, h.set = m, set
	h.mu.Unlock()
	clog.Infof("loaded %q: %d entities, %d relations, %d triples",
		h.path, len(m.Entities), len(m.Relations), len(set.Triples))
	return nil
}

// Set returns the current triple set.
func (h *Handle) Set() *translate.TripleSet {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.set
}

// Model returns the current graph model.
func (h *Handle) Model() *graph.Model {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.model
}

// Query evaluates one query against the current triple set.
func (h *Handle) Query(qry string) (*query.Result, error) {
	set := h.Set()
	return query.Execute(qry, set.Triples, set.Namespaces)
}

// Watch rebuilds the triple set whenever the model file changes. It
// blocks until the context is done.
func (h *Handle) Watch(ctx context.Context) error {
	if h.path == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// Watch the directory: editors typically replace the file, which
	// swaps the inode a file watch would follow.
	if err := w.Add(filepath.Dir(h.path)); err != nil {
		return err
	}
	target := filepath.Clean(h.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := h.Reload(); err != nil {
				clog.Errorf("watch: reload failed: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			clog.Errorf("watch: %v", err)
		}
	}
}

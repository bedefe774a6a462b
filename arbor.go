package arbor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/arborlab/arbor/internal/adapters"
	"github.com/arborlab/arbor/internal/build"
	"github.com/arborlab/arbor/internal/validator"
	"github.com/arborlab/arbor/pkg/observability"
	"github.com/arborlab/arbor/pkg/ports"
	"github.com/arborlab/arbor/pkg/registry"
	"github.com/arborlab/arbor/pkg/tree"
)

// Version is the library version, reported by the CLI and the adapters.
var Version = "0.3.0"

// Conventional node-definition file names looked up in the project root.
var defFileNames = []string{"node-config.json", "node-config.yaml", "node-config.yml"}

// Workspace is the high-level entry point for the arbor library.
// It binds a tree store and a definition source into one editing surface.
type Workspace struct {
	store  ports.TreeStore
	defs   ports.DefSource
	logger *slog.Logger
}

// Option defines a functional option for configuring the Workspace.
type Option func(*Workspace)

// WithStore injects a custom TreeStore, bypassing the default filesystem
// store rooted at the project directory.
func WithStore(s ports.TreeStore) Option {
	return func(w *Workspace) {
		w.store = s
	}
}

// WithDefSource sets a custom definition source.
func WithDefSource(d ports.DefSource) Option {
	return func(w *Workspace) {
		w.defs = d
	}
}

// WithLogger sets a custom structured logger for the workspace.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workspace) {
		w.logger = logger
	}
}

// Open initializes a Workspace for a project directory.
//
// By default it stores trees on the filesystem under projectDir and loads
// node definitions from a conventional node-config file in the project root
// if one exists. If WithStore is provided, projectDir can be empty.
func Open(projectDir string, opts ...Option) (*Workspace, error) {
	ws := &Workspace{}
	for _, opt := range opts {
		opt(ws)
	}

	if ws.store == nil {
		if projectDir == "" {
			return nil, fmt.Errorf("projectDir is required when no custom store is provided")
		}
		absPath, err := filepath.Abs(projectDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project dir: %w", err)
		}
		if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
			return nil, fmt.Errorf("project dir %q is not a directory", projectDir)
		}
		ws.store = adapters.NewFileStore(absPath)
	}

	if ws.defs == nil {
		reg := registry.New()
		if projectDir != "" {
			for _, name := range defFileNames {
				p := filepath.Join(projectDir, name)
				if _, err := os.Stat(p); err != nil {
					continue
				}
				if err := reg.LoadFile(p); err != nil {
					return nil, fmt.Errorf("failed to load node definitions: %w", err)
				}
				break
			}
		}
		ws.defs = reg
	}

	if ws.logger == nil {
		ws.logger = slog.Default()
	}

	return ws, nil
}

// Store returns the workspace's tree store.
func (w *Workspace) Store() ports.TreeStore { return w.store }

// Defs returns the workspace's definition source.
func (w *Workspace) Defs() ports.DefSource { return w.defs }

// Document loads the raw tree document, including the opaque editor
// metadata this core passes through untouched.
func (w *Workspace) Document(ctx context.Context, name string) (*tree.TreeModel, error) {
	return w.store.Load(ctx, name)
}

// LoadTree opens a tree file and builds the enriched graph: definitions
// bound, subtrees resolved, IDs assigned and status bitmasks computed.
//
// An unreadable or malformed top-level file is fatal and returns an error.
// Broken subtree references and schema problems are not: they surface as
// diagnostics on an otherwise usable graph.
func (w *Workspace) LoadTree(ctx context.Context, name string) (*tree.GraphNode, tree.Diagnostics, error) {
	start := time.Now()

	doc, err := w.store.Load(ctx, name)
	if err != nil {
		observability.ObserveBuild(start, nil, err)
		return nil, nil, fmt.Errorf("failed to load tree %q: %w", name, err)
	}
	if doc.Root == nil {
		err := fmt.Errorf("tree %q has no root node", name)
		observability.ObserveBuild(start, nil, err)
		return nil, nil, err
	}

	g, diags := build.ToGraph(ctx, doc.Root, build.Options{
		Defs:   w.defs,
		Store:  w.store,
		Origin: name,
	})
	build.Assign(g)

	observability.ObserveBuild(start, diags, nil)
	w.logger.Debug("tree built", "tree", name, "nodes", g.Count(), "diagnostics", len(diags))
	return g, diags, nil
}

// Validate builds the tree and validates it against its definitions.
// The returned graph is the normalized copy produced by validation.
func (w *Workspace) Validate(ctx context.Context, name string) (*tree.GraphNode, tree.Diagnostics, error) {
	g, diags, err := w.LoadTree(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	norm, vdiags := validator.Run(g)
	observability.ObserveDiagnostics(vdiags)
	return norm, append(diags, vdiags...), nil
}

// SaveTree converts the graph back to the compact model and stores it under
// name, preserving the document's opaque editor metadata.
//
// When the graph's root is itself the subtree stored under name, its
// children are serialized inline (full export); in every other case subtree
// roots are written as path references only.
func (w *Workspace) SaveTree(ctx context.Context, name string, g *tree.GraphNode) error {
	doc, err := w.store.Load(ctx, name)
	if err != nil {
		if !errors.Is(err, ports.ErrTreeNotFound) {
			return fmt.Errorf("failed to load existing tree %q: %w", name, err)
		}
		base := path.Base(name)
		doc = &tree.TreeModel{Name: strings.TrimSuffix(base, tree.FileExt)}
	}

	full := g.Path == "" || samePath(g.Path, name)
	doc.Root = build.ToModel(g, full)

	if err := w.store.Save(ctx, name, doc); err != nil {
		return fmt.Errorf("failed to save tree %q: %w", name, err)
	}
	w.logger.Debug("tree saved", "tree", name)
	return nil
}

// Stale reports whether any subtree file backing the graph changed since it
// was resolved.
func (w *Workspace) Stale(ctx context.Context, g *tree.GraphNode) bool {
	stale := build.Stale(ctx, g, w.store)
	observability.ObserveStaleCheck(stale)
	return stale
}

// ListTrees returns the names of all tree files in the workspace.
func (w *Workspace) ListTrees(ctx context.Context) ([]string, error) {
	return w.store.List(ctx)
}

func samePath(a, b string) bool {
	return path.Clean(filepath.ToSlash(a)) == path.Clean(filepath.ToSlash(b))
}

package ports

import (
	"context"
	"errors"
	"time"

	"github.com/arborlab/arbor/pkg/tree"
)

// ErrTreeNotFound is returned by TreeStore.Load and ModTime for unknown names.
var ErrTreeNotFound = errors.New("tree not found")

// TreeStore persists tree documents keyed by their project-relative path.
//
// Implementations must round-trip the document's opaque editor metadata
// unmodified.
type TreeStore interface {
	// Load reads and parses the tree document stored under name.
	Load(ctx context.Context, name string) (*tree.TreeModel, error)

	// Save writes the tree document under name.
	Save(ctx context.Context, name string, doc *tree.TreeModel) error

	// List returns the names of all stored tree documents.
	List(ctx context.Context) ([]string, error)

	// Delete removes the document stored under name.
	Delete(ctx context.Context, name string) error

	// ModTime returns the document's last modification time. The subtree
	// resolver records it on resolution and compares it on staleness checks.
	ModTime(ctx context.Context, name string) (time.Time, error)
}

package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arborlab/arbor/pkg/ports"
	"github.com/arborlab/arbor/pkg/tree"
)

// FileStore implements ports.TreeStore on the local filesystem.
// Tree documents are JSON files under a project root; names are
// project-relative paths.
type FileStore struct {
	BasePath string
}

// NewFileStore creates a FileStore rooted at basePath.
func NewFileStore(basePath string) *FileStore {
	if basePath == "" {
		basePath = "."
	}
	return &FileStore{BasePath: basePath}
}

// resolve maps a document name to an absolute path, enforcing the tree file
// extension and keeping the path inside the project root.
func (f *FileStore) resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("tree name cannot be empty")
	}
	if filepath.Ext(name) != tree.FileExt {
		return "", fmt.Errorf("%q is not a tree file (want %s)", name, tree.FileExt)
	}
	full := filepath.Join(f.BasePath, filepath.FromSlash(name))
	rel, err := filepath.Rel(f.BasePath, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%q escapes the project root", name)
	}
	return full, nil
}

// Load reads and parses the tree document stored under name.
func (f *FileStore) Load(ctx context.Context, name string) (*tree.TreeModel, error) {
	path, err := f.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrTreeNotFound
		}
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}

	var doc tree.TreeModel
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tree file %q: %w", name, err)
	}
	return &doc, nil
}

// Save writes the tree document under name, creating parent directories as
// needed.
func (f *FileStore) Save(ctx context.Context, name string, doc *tree.TreeModel) error {
	path, err := f.resolve(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to ensure tree directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tree file: %w", err)
	}
	return nil
}

// Delete removes the document stored under name.
func (f *FileStore) Delete(ctx context.Context, name string) error {
	path, err := f.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete tree file: %w", err)
	}
	return nil
}

// List returns the project-relative names of all tree files under the root.
// Only the tree file extension is considered editable.
func (f *FileStore) List(ctx context.Context) ([]string, error) {
	var names []string
	err := filepath.WalkDir(f.BasePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories hold editor state, not trees.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != tree.FileExt {
			return nil
		}
		rel, err := filepath.Rel(f.BasePath, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list trees: %w", err)
	}
	return names, nil
}

// ModTime returns the file's last modification time.
func (f *FileStore) ModTime(ctx context.Context, name string) (time.Time, error) {
	path, err := f.resolve(name)
	if err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, ports.ErrTreeNotFound
		}
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

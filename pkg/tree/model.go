package tree

import (
	"encoding/json"

	"github.com/arborlab/arbor/pkg/btvalue"
)

// FileExt is the only extension treated as an editable tree file.
const FileExt = ".json"

// NodeModel is the compact on-disk form of a single node.
//
// A node either owns inline Children or references an externally stored
// subtree via Path, never both as authored content.
type NodeModel struct {
	ID       int                      `json:"id"`
	Name     string                   `json:"name"`
	Desc     string                   `json:"desc,omitempty"`
	Args     map[string]btvalue.Value `json:"args,omitempty"`
	Input    []string                 `json:"input,omitempty"`
	Output   []string                 `json:"output,omitempty"`
	Children []*NodeModel             `json:"children,omitempty"`
	Debug    bool                     `json:"debug,omitempty"`
	Disabled bool                     `json:"disabled,omitempty"`
	Path     string                   `json:"path,omitempty"`
}

// TreeModel is a persisted tree file.
//
// Export, Group, Import and Vars are editor metadata this core passes
// through untouched; they are kept as raw JSON so saving a tree never
// reorders or reinterprets them.
type TreeModel struct {
	Name   string          `json:"name"`
	Desc   string          `json:"desc,omitempty"`
	Export json.RawMessage `json:"export,omitempty"`
	Group  json.RawMessage `json:"group,omitempty"`
	Import json.RawMessage `json:"import,omitempty"`
	Vars   json.RawMessage `json:"vars,omitempty"`
	Root   *NodeModel      `json:"root"`
}

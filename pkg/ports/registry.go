package ports

import "github.com/arborlab/arbor/pkg/btschema"

// DefSource resolves node type names to definitions.
type DefSource interface {
	// Lookup returns the definition for a node type name. It never fails:
	// unknown names return the btschema.Unknown sentinel, so callers can
	// always bind and let validation flag the undefined node.
	Lookup(name string) *btschema.NodeDef
}

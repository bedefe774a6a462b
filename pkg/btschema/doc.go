// Package btschema defines node definitions: the schemas that constrain a
// behavior-tree node's arguments, input/output slots, child count and status
// composition.
//
// Definition files encode argument types, slot descriptors and status
// directives as compact strings ("int?", "target...", "&success"). Those
// descriptors are parsed exactly once, at load time, into explicit structures
// so that validation and status composition never re-parse strings.
package btschema

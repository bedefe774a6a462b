// Package tree holds the two representations of a behavior tree:
//
//   - NodeModel/TreeModel: the compact on-disk document shape,
//   - GraphNode: the enriched in-memory graph the editor works on, with each
//     node bound to its definition, numbered, and carrying a computed status
//     bitmask.
//
// Conversion between the two lives in internal/build.
package tree

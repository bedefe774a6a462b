// Package build is the tree build engine: it converts stored tree models
// into the enriched in-memory graph (resolving subtree references with cycle
// detection), converts graphs back into the compact stored form, and assigns
// sequential IDs and composite status bitmasks.
package build

/*
Package ports defines the driven ports (interfaces) for the arbor editor core.

These interfaces decouple the build/validation engine from external
implementations, allowing trees and definitions to come from various backends.

# Key Interfaces

  - TreeStore: persists tree documents (filesystem, Redis, memory).
  - DefSource: resolves node type names to definitions.
*/
package ports

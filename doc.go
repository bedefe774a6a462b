/*
Package arbor is the core engine of a behavior-tree editor: it loads compact
tree documents into an enriched in-memory graph, resolves external subtree
references, numbers nodes, computes per-node outcome bitmasks, and validates
every argument and slot against the node definitions the tree is bound to.

It does not execute behavior trees and it does not render anything; those
concerns belong to the host (a canvas UI, a game runtime, a CI check).

# Concept

A tree file stores a compact node model: names, argument values, slot
bindings and either inline children or a path reference to another tree
file. Opening a tree binds every node to its definition (its schema),
inlines referenced subtrees with cycle detection, and assigns dense
sequential IDs. Saving converts back, respecting subtree boundaries so a
parent file never re-serializes children owned by a referenced file.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/arborlab/arbor"
	)

	func main() {
		ws, err := arbor.Open("./my-project")
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		root, diags, err := ws.Validate(ctx, "trees/patrol.json")
		if err != nil {
			log.Fatal(err)
		}
		for _, d := range diags {
			log.Println(d)
		}
		log.Printf("%d nodes, root status %s", root.Count(), root.Status)
	}
*/
package arbor

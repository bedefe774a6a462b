package arbor_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/arborlab/arbor"
)

// ExampleOpen demonstrates opening a project directory, building a tree and
// validating it against the project's node definitions.
func ExampleOpen() {
	// 1. A project is a directory of tree files plus a node-config file.
	dir, err := os.MkdirTemp("", "arbor-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	defs := `[
		{"name": "Sequence", "type": "Composite", "status": ["&success", "|failure", "|running"]},
		{"name": "Log", "type": "Action", "args": [{"name": "message", "type": "string"}], "status": ["success"]}
	]`
	if err := os.WriteFile(filepath.Join(dir, "node-config.json"), []byte(defs), 0644); err != nil {
		log.Fatal(err)
	}

	doc := `{
		"name": "greet",
		"root": {
			"id": 1, "name": "Sequence",
			"children": [
				{"id": 2, "name": "Log", "args": {"message": "hello"}},
				{"id": 3, "name": "Log"}
			]
		}
	}`
	if err := os.WriteFile(filepath.Join(dir, "greet.json"), []byte(doc), 0644); err != nil {
		log.Fatal(err)
	}

	// 2. Open the workspace and validate the tree.
	ws, err := arbor.Open(dir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	g, diags, err := ws.Validate(ctx, "greet.json")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("nodes: %d\n", g.Count())
	fmt.Printf("status: %s\n", g.Status)
	for _, d := range diags {
		fmt.Println(d.String())
	}

	// Output:
	// nodes: 3
	// status: success
	// error [node 3 Log] args.message: missing required value of type string
}

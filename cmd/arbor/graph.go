package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <tree>",
	Short: "Export a tree visualization",
	Long:  `Builds the tree and outputs a Mermaid diagram (graph TD) of its structure, with shapes by node category and disabled nodes grayed out.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := openWorkspace(cmd, nil)
		if err != nil {
			fmt.Printf("Error opening workspace: %v\n", err)
			os.Exit(1)
		}

		g, _, err := ws.LoadTree(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error building tree: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(g))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/internal/presentation/tui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <tree>",
	Short: "Check a tree against its node definitions",
	Long:  `Builds the tree, resolves its subtree references and reports every schema problem found: unknown node types, bad argument values, missing ports and broken subtree links.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := openWorkspace(cmd, nil)
		if err != nil {
			fmt.Printf("Error opening workspace: %v\n", err)
			os.Exit(1)
		}

		name := args[0]
		g, diags, err := ws.Validate(cmd.Context(), name)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		report := tui.BuildReport(name, g.Count(), diags)
		render := tui.NewRenderer()
		out, err := render(report)
		if err != nil {
			out = report
		}
		fmt.Print(out)

		if diags.HasErrors() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

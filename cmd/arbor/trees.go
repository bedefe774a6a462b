package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var treesCmd = &cobra.Command{
	Use:   "trees",
	Short: "List the tree files in the workspace",
	Run: func(cmd *cobra.Command, args []string) {
		ws, err := openWorkspace(cmd, args)
		if err != nil {
			fmt.Printf("Error opening workspace: %v\n", err)
			os.Exit(1)
		}

		names, err := ws.ListTrees(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing trees: %v\n", err)
			os.Exit(1)
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(treesCmd)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor"
	"github.com/arborlab/arbor/internal/adapters/redis"
	"github.com/arborlab/arbor/internal/logging"
	"github.com/arborlab/arbor/pkg/registry"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor is a behavior tree editing and validation toolkit",
	Long:  `Arbor loads behavior tree files, binds them to node definitions, validates them and serves them to editor front-ends.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the tree files")
	rootCmd.PersistentFlags().String("defs", "", "Node definition file (defaults to node-config.{json,yaml,yml} in the project dir)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for tree storage instead of the filesystem (e.g. localhost:6379)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// openWorkspace builds a workspace from the persistent flags. Positional
// directory arguments win over the --dir default, matching git-style tools.
func openWorkspace(cmd *cobra.Command, args []string) (*arbor.Workspace, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if !cmd.Flags().Changed("dir") && len(args) > 0 {
		dir = args[0]
	}

	levelName, _ := cmd.Flags().GetString("log-level")
	logger := logging.New(logging.ParseLevel(levelName))
	slog.SetDefault(logger)

	opts := []arbor.Option{arbor.WithLogger(logger)}

	if defsPath, _ := cmd.Flags().GetString("defs"); defsPath != "" {
		reg := registry.New()
		if err := reg.LoadFile(defsPath); err != nil {
			return nil, fmt.Errorf("failed to load node definitions: %w", err)
		}
		opts = append(opts, arbor.WithDefSource(reg))
	}

	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		opts = append(opts, arbor.WithStore(redis.New(addr, "", 0)))
	}

	return arbor.Open(dir, opts...)
}

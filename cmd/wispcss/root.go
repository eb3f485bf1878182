package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "wispcss",
		Short: "On-demand atomic CSS generation",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "wispcss.toml", "path to the project config")

	root.AddCommand(newBuildCmd(&configPath))
	root.AddCommand(newWatchCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newInitCmd())
	root.AddCommand(newDebugCmd(&configPath))

	return root
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const scaffoldTOML = `content = ["**/*.html", "**/*.tsx", "**/*.jsx"]
dark_mode = "media"

[theme.extend]

# [[utilities]]
# key = "tab"
# theme = "spacing"
# css = { "tab-size" = "$0" }

# [[static_utilities]]
# key = "sr-only"
# decls = { position = "absolute", width = "1px", height = "1px", overflow = "hidden" }
`

func newInitCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(scaffoldTOML), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "wispcss.toml", "path for the new config file")
	return cmd
}

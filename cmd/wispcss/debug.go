package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wispcss/internal/css"
	"wispcss/internal/generator"
)

func newDebugCmd(configPath *string) *cobra.Command {
	var printAST bool
	cmd := &cobra.Command{
		Use:   "debug <class> [class...]",
		Short: "Resolve individual classes and print the CSS each one generates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sys, _, err := loadProject(*configPath)
			if err != nil {
				return err
			}
			for _, raw := range args {
				gu, ok := generator.Generate(sys, raw)
				if !ok {
					fmt.Printf("%s: no match\n", raw)
					continue
				}
				fmt.Printf("%s:\n", raw)
				if printAST {
					dumpRules(gu.Rules, 0)
					dumpRules(gu.Extra, 0)
					continue
				}
				fmt.Print(css.Write(gu.Rules, css.DefaultWriterConfig))
				if len(gu.Extra) > 0 {
					fmt.Print(css.Write(gu.Extra, css.DefaultWriterConfig))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&printAST, "print-ast", false, "dump the intermediate css.Rule tree instead of serialized CSS")
	return cmd
}

// dumpRules prints the css.Rule tree gu.Rules/gu.Extra resolve to before
// serialization, one rule per line with nested rules indented beneath
// their parent.
func dumpRules(rules css.RuleList, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, r := range rules {
		fmt.Printf("%sRule{Selector: %q}\n", indent, r.Selector)
		for _, d := range r.Decls {
			fmt.Printf("%s  Decl{%s: %s}\n", indent, d.Name, d.Value)
		}
		if len(r.Rules) > 0 {
			dumpRules(r.Rules, depth+1)
		}
	}
}

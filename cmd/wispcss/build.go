package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/zeebo/xxh3"

	"wispcss/internal/cache"
	"wispcss/internal/config"
	"wispcss/internal/design"
	"wispcss/internal/extract"
	"wispcss/internal/generator"
)

func newBuildCmd(configPath *string) *cobra.Command {
	var output string
	var oneShot bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Scan the configured content and emit a stylesheet once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sys, root, err := loadProject(*configPath)
			if err != nil {
				return err
			}

			candidates, err := scanContent(root, cfg.Content)
			if err != nil {
				return err
			}

			cc := cache.NewOneShot()
			if !oneShot {
				cc = cache.New(genHash(root, *configPath))
			}
			proc := generator.NewProcessor(sys, cc)
			proc.Writer = cfg.WriterConfig()
			css := proc.Run(candidates)
			if cc.State() != cache.OneShot {
				css = proc.Stylesheet()
			}

			if err := os.WriteFile(output, []byte(css), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			slog.Info("build complete", "candidates", len(candidates), "output", output, "size", humanize.Bytes(uint64(len(css))))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "dist/wispcss.css", "path to write the generated stylesheet")
	cmd.Flags().BoolVar(&oneShot, "one-shot", true, "use a OneShot cache instead of an in-memory FirstRun generation cache")
	return cmd
}

// loadProject loads configPath, builds a design.System from it, and
// returns the content root (the config's own directory) candidates
// should be scanned relative to.
func loadProject(configPath string) (*config.Config, *design.System, string, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, "", err
	}
	sys := config.Build(cfg)
	root := filepath.Dir(configPath)
	return cfg, sys, root, nil
}

func scanContent(root string, patterns []string) ([]string, error) {
	candidates, err := extract.FromGlob(root, patterns)
	if err != nil {
		return nil, fmt.Errorf("scanning content: %w", err)
	}
	return candidates, nil
}

func genHash(root, configPath string) uint64 {
	h := xxh3.New()
	h.WriteString(root)
	h.WriteString(configPath)
	return h.Sum64()
}

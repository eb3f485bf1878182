package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"wispcss/internal/cache"
	"wispcss/internal/generator"
)

func newWatchCmd(configPath *string) *cobra.Command {
	var output string
	var debounce time.Duration
	var cacheDB string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the stylesheet whenever the scanned content changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sys, root, err := loadProject(*configPath)
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
			defer watcher.Close()

			if err := addTreeWatches(watcher, root); err != nil {
				return err
			}

			cc := cache.New(genHash(root, *configPath))

			var store *cache.Store
			if cacheDB != "" {
				store, err = cache.OpenStore(cacheDB)
				if err != nil {
					return err
				}
				defer store.Close()

				configBytes, err := os.ReadFile(*configPath)
				if err != nil {
					return err
				}
				if err := store.Reconcile(cache.ConfigHash(configBytes)); err != nil {
					return fmt.Errorf("reconciling cache db: %w", err)
				}
				if err := store.Load(cc); err != nil {
					return fmt.Errorf("loading cache db: %w", err)
				}
				slog.Info("warmed persisted cache", "path", cacheDB)
			}

			proc := generator.NewProcessor(sys, cc)
			proc.Writer = cfg.WriterConfig()

			rebuild := func() error {
				candidates, err := scanContent(root, cfg.Content)
				if err != nil {
					return err
				}
				proc.Run(candidates)
				css := proc.Stylesheet()
				if err := os.WriteFile(output, []byte(css), 0644); err != nil {
					return err
				}
				if store != nil {
					if err := store.Flush(cc); err != nil {
						return fmt.Errorf("flushing cache db: %w", err)
					}
				}
				slog.Info("rebuilt", "candidates", len(candidates), "bytes", len(css))
				return nil
			}

			if err := rebuild(); err != nil {
				return err
			}

			var pending *time.Timer
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
						continue
					}
					if pending != nil {
						pending.Stop()
					}
					pending = time.AfterFunc(debounce, func() {
						if err := rebuild(); err != nil {
							slog.Error("rebuild failed", "error", err)
						}
					})
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					slog.Error("watch error", "error", err)
				}
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "dist/wispcss.css", "path to write the generated stylesheet")
	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "quiet period after a change before rebuilding")
	cmd.Flags().StringVar(&cacheDB, "cache-db", "", "sqlite file to persist the generation cache across restarts")
	return cmd
}

// addTreeWatches registers every directory under root with watcher;
// fsnotify watches are non-recursive, so each subdirectory needs its own.
func addTreeWatches(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "node_modules" || info.Name() == ".git" || info.Name() == "dist" {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

// Command wispcss is the CLI driver: one-shot builds, a watch mode that
// rebuilds on file-system changes, and a small dev server that serves
// the generated stylesheet alongside the scanned project.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"wispcss/internal/logging"
)

func main() {
	logging.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	} else {
		slog.Debug("loaded .env into the process environment")
	}

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

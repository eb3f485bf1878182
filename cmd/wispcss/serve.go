package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wispcss/internal/cache"
	"wispcss/internal/generator"
)

func newServeCmd(configPath *string) *cobra.Command {
	var host string
	var port int
	var rps int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated stylesheet and rebuild it on every request",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sys, root, err := loadProject(*configPath)
			if err != nil {
				return err
			}

			proc := generator.NewProcessor(sys, cache.New(genHash(root, *configPath)))
			proc.Writer = cfg.WriterConfig()
			var mu sync.Mutex

			router := chi.NewRouter()
			router.Use(middleware.RequestID)
			router.Use(middleware.RealIP)
			router.Use(middleware.Recoverer)
			router.Use(middleware.Timeout(30 * time.Second))
			router.Use(requestLogger)
			if rps > 0 {
				router.Use(httprate.Limit(rps, time.Second, httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, "too many requests", http.StatusTooManyRequests)
				})))
			}

			router.Get("/wispcss.css", func(w http.ResponseWriter, r *http.Request) {
				candidates, err := scanContent(root, cfg.Content)
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				mu.Lock()
				proc.Run(candidates)
				css := proc.Stylesheet()
				mu.Unlock()

				body := []byte(css)
				slog.Debug("serving stylesheet", "detected", mimetype.Detect(body).String(), "bytes", len(body))
				w.Header().Set("Content-Type", "text/css; charset=utf-8")
				w.Write(body)
			})

			addr := fmt.Sprintf("%s:%d", host, port)
			slog.Info("dev server listening", "addr", addr)
			return http.ListenAndServe(addr, router)
		},
	}
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "address to bind")
	cmd.Flags().IntVar(&port, "port", 3333, "port to bind")
	cmd.Flags().IntVar(&rps, "rate-limit", 0, "requests per second per client, 0 disables limiting")
	return cmd
}

// requestLogger tags every request with a UUID and logs its outcome,
// the way the dev server surfaces what stylesheet consumers are doing.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("request", "id", id, "method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "duration", time.Since(start))
	})
}

package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/contextpack/contextpack/internal/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	root      string // directory for the tree endpoint
	backend   string // cache backend: null, memory, file, redis
	redisAddr string // redis address when backend is redis
	ttl       time.Duration
}

// serveCommand creates the serve command exposing the engine over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		backend:   "null",
		redisAddr: "localhost:6379",
		ttl:       server.DefaultCacheTTL,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the packing engine over HTTP",
		Long: `Serve starts an HTTP server exposing the packing engine.

Endpoints:
  POST /api/pack   pack a set of files sent in the request body
  GET  /api/tree   list the file tree under --root (if set)
  GET  /healthz    liveness and version

Environment variables are read from a .env file in the working
directory if present. CONTEXTPACK_ADDR overrides the default address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.root, "root", "", "directory served by the tree endpoint")
	cmd.Flags().StringVar(&opts.backend, "cache", opts.backend, "response cache backend (null, memory, file, redis)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "redis address for the redis backend")
	cmd.Flags().DurationVar(&opts.ttl, "cache-ttl", opts.ttl, "response cache TTL")

	return cmd
}

func runServe(cmd *cobra.Command, opts serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	// Optional .env for deployment settings.
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env")
	}
	if addr := os.Getenv("CONTEXTPACK_ADDR"); addr != "" && !cmd.Flags().Changed("addr") {
		opts.addr = addr
	}

	respCache, err := newResponseCache(cmd, opts.backend, opts.redisAddr)
	if err != nil {
		return err
	}
	defer respCache.Close()

	srv := server.New(logger,
		server.WithCache(respCache),
		server.WithRoot(opts.root),
		server.WithCacheTTL(opts.ttl),
	)

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", opts.addr, "cache", opts.backend)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("Server stopped")
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

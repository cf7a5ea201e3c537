package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xanolabs/xano-mcp/internal/config"
	"github.com/xanolabs/xano-mcp/internal/logging"
	"github.com/xanolabs/xano-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "xano-mcp",
		Short: "Xano metadata API exposed as MCP tools",
		RunE:  run,
	}

	root.PersistentFlags().String("token", "", "Xano API bearer token (or XANO_API_TOKEN)")
	root.PersistentFlags().String("default-instance", "", "Instance used when tools omit instance_name")
	root.PersistentFlags().String("base-domain", "n7c.xano.io", "Domain appended to bare instance names")
	root.PersistentFlags().String("api-url", "", "Meta API base URL override (self-hosted deployments)")
	root.PersistentFlags().String("log-level", "info", "Log level (info|debug)")
	root.PersistentFlags().Duration("http-timeout", 30*time.Second, "Timeout for upstream API requests")
	root.PersistentFlags().String("transport", "stdio", "MCP transport (stdio|http)")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host (http transport)")
	root.PersistentFlags().Int("port", 8000, "HTTP port (http transport)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.DefaultLogger().WithName("xano-mcp"))

	if config.Token() == "" {
		// The original server kept running without a token so hosts could
		// surface the 401s; do the same and just warn.
		logger.Info("no API token configured; upstream calls will fail",
			"hint", "set XANO_API_TOKEN or pass --token")
	}

	srv := mcp.New(mcp.DefaultConfig())

	if config.Transport() == "stdio" {
		logger.Info("serving MCP over stdio")
		return srv.ServeStdio()
	}

	addr := config.Host() + ":" + strconv.Itoa(config.Port())
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

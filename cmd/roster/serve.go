package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyperengineering/roster"
	rostermcp "github.com/hyperengineering/roster/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server over HTTP",
	Long: `Start a Model Context Protocol (MCP) server over streamable HTTP.

Each request is a self-contained JSON-RPC message (tool discovery or a
single tool call) on the /mcp endpoint. Tool calls are bounded by
--timeout; a call that exceeds it receives a timeout envelope.

When an API key is configured (--api-key or ROSTER_API_KEY), callers
must present it in the X-API-Key header. The MCP layer itself performs
no authentication; the check sits in front of it.`,
	RunE: runServe,
}

var (
	serveAddr    string
	serveTimeout time.Duration
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: :8080)")
	serveCmd.Flags().DurationVar(&serveTimeout, "timeout", 60*time.Second, "Maximum duration of a single tool call")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if serveAddr != "" {
		cfg.HTTPAddr = serveAddr
	}
	cfg.CallTimeout = serveTimeout
	cfg = cfg.WithDefaults()

	client, err := roster.New(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	server := rostermcp.NewServer(client, rostermcp.WithCallTimeout(cfg.CallTimeout))

	mux := http.NewServeMux()
	mux.Handle("/mcp", requireAPIKey(cfg.APIKey, server.HTTPHandler()))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          log.New(os.Stderr, "[http] ", log.LstdFlags),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("roster MCP server listening on %s", cfg.HTTPAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// requireAPIKey guards the MCP endpoint with an X-API-Key check.
// With an empty key the handler passes everything through.
func requireAPIKey(key string, next http.Handler) http.Handler {
	if key == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != key {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

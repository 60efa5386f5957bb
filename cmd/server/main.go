package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ratnesh149/raginators-hybrid/internal/config"
	"github.com/ratnesh149/raginators-hybrid/internal/dataset"
	"github.com/ratnesh149/raginators-hybrid/internal/domain/candidate"
	"github.com/ratnesh149/raginators-hybrid/internal/mcp"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, &sdkmcp.StdioTransport{})
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "candidates: %v\n", err)
		os.Exit(1)
	}
}

// run serves the candidate records over transport until it closes or ctx is
// canceled. Deferred cleanup always runs before it returns.
func run(ctx context.Context, transport sdkmcp.Transport) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// stdout carries JSON-RPC, so logs go to stderr or a file.
	logWriter := io.Writer(os.Stderr)
	if cfg.Log.Path != "" {
		fileWriter, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer fileWriter.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	store, source, err := loadStore(cfg.Dataset.Path)
	if err != nil {
		logger.Error("failed to load candidate dataset", "path", cfg.Dataset.Path, "error", err)
		return fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("candidate dataset loaded", "source", source, "records", store.Len())

	server := mcp.NewServer(mcp.Config{
		Name:       cfg.Server.Name,
		Version:    version,
		Candidates: store,
		Logger:     logger,
	})

	return serve(ctx, logger, server, transport)
}

// loadStore returns the built-in sample store unless path names an external dataset.
func loadStore(path string) (*candidate.Store, string, error) {
	if path == "" {
		return dataset.Default(), "embedded", nil
	}
	store, err := dataset.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return store, path, nil
}

func serve(ctx context.Context, logger *slog.Logger, server *sdkmcp.Server, transport sdkmcp.Transport) error {
	logger.Info("starting transport")

	// Run blocks until the transport closes or the context is canceled.
	if err := server.Run(ctx, transport); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tgberrios/DataSync/internal/fetcher"
	"github.com/tgberrios/DataSync/pkg/config"
	"github.com/tgberrios/DataSync/pkg/httpfetch"
	"github.com/tgberrios/DataSync/pkg/logger"
	"github.com/tgberrios/DataSync/pkg/projection"

	"go.uber.org/zap"
)

func main() {
	// 1. Load config
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	l, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "fetcher",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer l.Sync()

	// 3. Initialize the HTTP client
	client := httpfetch.New(httpfetch.Config{
		URL:         cfg.Fetcher.URL,
		Timeout:     cfg.Fetcher.Timeout,
		MaxAttempts: cfg.Fetcher.MaxAttempts,
	})

	// 4. Create service
	svc := fetcher.NewService(l, client, projection.DefaultLimit, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Run. Fetch failures become the error-record document and the
	// process still exits 0; only a stdout write failure is fatal.
	l.Debug("fetcher starting", zap.String("url", cfg.Fetcher.URL))
	if err := svc.Run(ctx); err != nil {
		l.Error("failed to write output", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tgberrios/DataSync/internal/recordgen"
	"github.com/tgberrios/DataSync/pkg/config"
	"github.com/tgberrios/DataSync/pkg/logger"
	"github.com/tgberrios/DataSync/pkg/synth"
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
		ServiceName: "recordgen",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer l.Sync()

	// 3. Build the random source; seed 0 means wall clock
	var src *synth.Source
	if cfg.Synth.Seed != 0 {
		src = synth.NewSource(cfg.Synth.Seed)
	} else {
		src = synth.NewTimeSource()
	}

	// 4. Create service and run
	svc := recordgen.NewService(l, src, time.Now, os.Stdout)
	if err := svc.Run(context.Background()); err != nil {
		l.Error("failed to write output", err)
		os.Exit(1)
	}
}

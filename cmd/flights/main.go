package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/flights/config"
	"github.com/Gunvolt24/flights/internal/app"
	"github.com/joho/godotenv"
)

// CLI-приложение для разбора и фильтрации рейсов.
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	// флаги перекрывают значения из окружения
	flag.StringVar(&cfg.Input.Path, "in", cfg.Input.Path, "path to input (.xml, .yaml, .json). If empty, reads from stdin.")
	flag.StringVar(&cfg.Input.Format, "format", cfg.Input.Format, "input format: auto|xml|yaml|json")
	flag.StringVar(&cfg.Output.Status, "status", cfg.Output.Status, "keep only flights with this exact status")
	flag.StringVar(&cfg.Output.Format, "output", cfg.Output.Format, "output format: text|jsonl")
	flag.BoolVar(&cfg.Metrics.Dump, "metrics", cfg.Metrics.Dump, "print metrics to stderr after parsing")
	flag.BoolVar(&cfg.Tracing.Enabled, "trace", cfg.Tracing.Enabled, "print trace spans to stderr")
	flag.Parse()

	ctx := context.Background()

	a, cleanup, err := app.Bootstrap(ctx, &cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		os.Exit(2)
	}

	path := cfg.Input.Path
	// stdin вариант: формат auto превращается в xml
	if path == "" {
		path = "/dev/stdin"
	}

	summary, err := a.Run(ctx, path, os.Stdout)
	cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "flights: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "flights ok (%s)\n", summary)
}

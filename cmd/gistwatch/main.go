package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfielder/gistwatch/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	username := flag.String("user", "", "GitHub username whose gists to show (overrides config)")
	configPath := flag.String("config", "", "override gistwatch config path (optional)")
	limit := flag.Int("limit", 0, "page size, 1-100 (optional, defaults to 100)")
	since := flag.String("since", "", "only show gists updated at or after this ISO-8601 timestamp (optional)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Username:   *username,
		Since:      *since,
		Verbose:    *verbose,
	}
	if n := *limit; n > 0 {
		opts.Limit = n
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "gistwatch: %v\n", err)
		return 1
	}
	return 0
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tinytelemetry/salesdash/internal/logging"
	"github.com/tinytelemetry/salesdash/internal/stubserver"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var addr string
	var fixturePath string
	var logLevel string
	var showVersion bool

	_ = godotenv.Load()

	flag.StringVar(&addr, "addr", envOr("SALESDASH_STUB_ADDR", "127.0.0.1:8000"), "listen address")
	flag.StringVar(&fixturePath, "fixture", os.Getenv("SALESDASH_STUB_FIXTURE"), "YAML file overriding the canned responses")
	flag.StringVar(&logLevel, "log-level", envOr("SALESDASH_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Salesdash Stub - Prediction Service Stub\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	if err := run(addr, fixturePath, logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(addr, fixturePath, logLevel string) error {
	gin.SetMode(gin.ReleaseMode)
	logger := logging.New(os.Stdout, logLevel, "json")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := stubserver.NewServer(addr, logger)
	if fixturePath != "" {
		fx, err := stubserver.LoadFixture(fixturePath)
		if err != nil {
			return err
		}
		srv.UseFixture(fx)
		logger.Info("fixture loaded", "path", fixturePath)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})

	err := g.Wait()
	logger.Info("stub server stopped")
	return err
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"adlens/adapters/tabular"
	"adlens/internal/config"
	"adlens/internal/errors"
	"adlens/internal/pipeline"
	"adlens/internal/testkit"
	"adlens/ports"
	"adlens/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	loader := selectLoader(cfg)
	p := pipeline.New(loader)
	cache := pipeline.NewCache()

	// Warm run: surface a missing source before accepting traffic.
	snap, _, err := p.RunCached(cache)
	if err != nil {
		log.Fatalf("[Main] initial pipeline run failed: %v", err)
	}
	log.Printf("[Main] ready: snapshot %s (%d marketing rows, %d merged days)",
		snap.ID, len(snap.Marketing), len(snap.Merged))

	server := ui.NewServer(p, cache)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(ctx, ":"+cfg.Server.Port)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("[Main] %v", err)
	}
}

// selectLoader picks the file loader, falling back to synthetic demo feeds
// when demo mode is on and no real sources exist on disk.
func selectLoader(cfg *config.Config) ports.SourceLoader {
	fileLoader := tabular.NewLoader(tabular.NewConfig(cfg.Data.BaseDirs))
	if _, err := fileLoader.Fingerprint(); err != nil {
		if cfg.Data.Demo && errors.GetCode(err) == errors.CodeSourceMissing {
			log.Printf("[Main] no source files found, demo mode: using synthetic feeds")
			return testkit.DefaultDemoLoader()
		}
		// Leave the error to the warm run so it is reported once, with its
		// full context.
	}
	return fileLoader
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wildcat/spartan/cmd/sync/syncer"
	"github.com/wildcat/spartan/common/bootstrap"
	"github.com/wildcat/spartan/common/repository"
	"github.com/wildcat/spartan/common/spypoint"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bootstrap service components
	components, err := bootstrap.Setup(ctx, "sync")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup service: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	if err := components.Config.ValidateSpypoint(); err != nil {
		components.Logger.Error("invalid spypoint configuration", "error", err)
		os.Exit(1)
	}

	components.Logger.Info("sync starting")

	client := spypoint.New(
		components.Config.Spypoint.Host,
		components.Config.Spypoint.User,
		components.Config.Spypoint.Password,
		components.Logger,
	)

	run := syncer.New(
		client,
		components.Storage,
		repository.NewCameraRepository(components.DB),
		repository.NewPictureRepository(components.DB),
		repository.NewSyncResultRepository(components.DB),
		components.Notifier,
		components.Dedup,
		components.Logger,
		syncer.Config{
			Days:        components.Config.Sync.Days,
			Pace:        components.Config.Sync.Pace,
			PhotoLimit:  components.Config.Sync.PhotoLimit,
			ThumbWidth:  components.Config.Sync.ThumbWidth,
			ThumbHeight: components.Config.Sync.ThumbHeight,
		},
	)

	// Cancel the run on SIGINT/SIGTERM; the next vendor or store call
	// returns a context error and the run winds down.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		components.Logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	stats, err := run.Run(ctx)
	if err != nil {
		components.Logger.Error("sync run failed", "error", err)
		os.Exit(1)
	}

	// Per-camera and per-photo failures are reported, not fatal.
	components.Logger.Info("sync finished",
		"cameras", stats.Cameras,
		"cameras_failed", stats.CamerasFailed,
		"uploaded", stats.Uploaded,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
	)
}

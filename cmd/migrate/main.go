// Command migrate applies migrations/ to the configured database with Atlas.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"apartment-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	var (
		dir    = flag.String("dir", "migrations", "directory holding the schema files")
		devURL = flag.String("dev-url", "docker://postgres/17/dev", "Atlas dev database used to compute the diff")
		dryRun = flag.Bool("dry-run", false, "print the planned statements without applying them")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg.DB, *dir, *devURL, *dryRun); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(db config.DBConfig, dir, devURL string, dryRun bool) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         db.BuildDSN(),
		To:          "file://" + abs,
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return err
	}

	slog.Info("schema applied",
		"database", db.DBName,
		"statements", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
		"dry_run", dryRun,
	)
	return nil
}

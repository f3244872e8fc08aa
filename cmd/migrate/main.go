package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"hotel-desk/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const migrateTimeout = 2 * time.Minute

// Applies migrations/ with the atlas CLI, which must be on PATH.
func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	statusOnly := flag.Bool("status", false, "print pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	url := cfg.DB.BuildDSN()

	if *statusOnly {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    url,
			DirURL: *dir,
		})
		if err != nil {
			slog.Error("failed to read migration status", "error", err)
			os.Exit(1)
		}
		slog.Info("migration status", "current", st.Current, "next", st.Next, "pending", len(st.Pending))
		return
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		DirURL: *dir,
	})
	if err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
}

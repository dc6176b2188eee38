// The export binary dumps the entity tables to CSV for offline analysis.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/export"
	"github.com/fortuna/courtside/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tables := flag.String("tables", "", "comma-separated tables to export (default: all)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync()

	db, err := store.NewDatabase(cfg.Database.URL, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	exporter := export.NewExporter(db, cfg.Export.Dir, cfg.Export.ChunkSize, logger)

	ctx := context.Background()
	if *tables == "" {
		return exporter.ExportAll(ctx)
	}
	for _, table := range strings.Split(*tables, ",") {
		if err := exporter.ExportTable(ctx, strings.TrimSpace(table)); err != nil {
			return err
		}
	}
	return nil
}

// Command seeder loads a catalog file and upserts its SKUs into the
// database. It is intended to be run offline, before or between rounds,
// not as part of the main server. Updating an SKU never touches live
// inventory rows; the new initial stock applies only to teams initialized
// afterwards.
//
// Flags:
//
//	--file     path to the catalog JSON file (required)
//	--dry-run  parse and validate the file without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/marketstage/backend/internal/adapter/postgres"
	"github.com/marketstage/backend/internal/adapter/postgres/catalog"
	"github.com/marketstage/backend/internal/app"
	"github.com/marketstage/backend/internal/config"
	"github.com/marketstage/backend/internal/domain"
)

// catalogFile is the on-disk seed format.
type catalogFile struct {
	Entries []catalogFileEntry `json:"entries"`
}

type catalogFileEntry struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	InitialStock int    `json:"initialStock"`
}

func main() {
	fileFlag := flag.String("file", "", "path to the catalog JSON file")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	entries, err := parseCatalogFile(*fileFlag)
	if err != nil {
		logger.Error("parse catalog file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("catalog file parsed",
		slog.String("file", *fileFlag),
		slog.Int("entries", len(entries)),
	)

	if *dryRunFlag {
		logger.Info("dry run, nothing written")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := catalog.New(pool)
	for _, e := range entries {
		if err := repo.Upsert(ctx, e); err != nil {
			logger.Error("upsert catalog entry",
				slog.String("sku", e.SKU),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	logger.Info("catalog seeded", slog.Int("entries", len(entries)))
}

func parseCatalogFile(path string) ([]domain.CatalogEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(file.Entries) == 0 {
		return nil, fmt.Errorf("%s contains no entries", path)
	}

	entries := make([]domain.CatalogEntry, 0, len(file.Entries))
	seen := make(map[string]struct{}, len(file.Entries))
	for i, e := range file.Entries {
		switch {
		case e.SKU == "":
			return nil, fmt.Errorf("entry %d: sku is required", i)
		case e.Name == "":
			return nil, fmt.Errorf("entry %d (%s): name is required", i, e.SKU)
		case e.InitialStock < 0:
			return nil, fmt.Errorf("entry %d (%s): initialStock must be >= 0", i, e.SKU)
		}
		if _, dup := seen[e.SKU]; dup {
			return nil, fmt.Errorf("entry %d: duplicate sku %s", i, e.SKU)
		}
		seen[e.SKU] = struct{}{}

		entries = append(entries, domain.CatalogEntry{
			SKU:          e.SKU,
			Name:         e.Name,
			Category:     e.Category,
			InitialStock: e.InitialStock,
		})
	}

	return entries, nil
}

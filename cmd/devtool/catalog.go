package main

import (
	"context"
	"fmt"

	"github.com/osse101/Outfitter_Go/internal/bootstrap"
	"github.com/osse101/Outfitter_Go/internal/catalog"
	"github.com/osse101/Outfitter_Go/internal/config"
	"github.com/osse101/Outfitter_Go/internal/database/postgres"
)

type CatalogCommand struct{}

func (c *CatalogCommand) Name() string {
	return "catalog"
}

func (c *CatalogCommand) Description() string {
	return "Validate the item catalog file or sync it to the database (validate, sync)"
}

func (c *CatalogCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: validate, sync")
	}

	switch args[0] {
	case "validate":
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		loader := catalog.NewLoader(cfg.CatalogSchema)
		items, err := loader.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}
		if err := loader.Validate(items); err != nil {
			return err
		}
		PrintSuccess("%s: %d items valid", cfg.CatalogPath, len(items.Items))
		return nil

	case "sync":
		ctx := context.Background()
		cfg, pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		result, err := bootstrap.SyncCatalog(ctx, catalog.NewLoader(cfg.CatalogSchema), postgres.NewItemRepository(pool), cfg.CatalogPath)
		if err != nil {
			return err
		}
		PrintSuccess("Inserted %d, updated %d, skipped %d", result.ItemsInserted, result.ItemsUpdated, result.ItemsSkipped)
		return nil
	}
	return fmt.Errorf("unknown catalog subcommand %q", args[0])
}

package main

import (
	"context"
	"time"

	"github.com/osse101/Outfitter_Go/internal/database"
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Wait until the database accepts connections and report its schema version"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking database")

	const maxAttempts = 30

	ctx := context.Background()
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		_, pool, err := connect(ctx)
		if err == nil {
			defer pool.Close()

			version, err := database.MigrationVersion(ctx, pool)
			if err != nil {
				PrintInfo("Database is up but not migrated: %v", err)
				return nil
			}
			PrintSuccess("Database ready at schema version %d", version)
			return nil
		}

		lastErr = err
		PrintInfo("Waiting for database (%d/%d)...", attempt, maxAttempts)
		time.Sleep(time.Second)
	}
	return lastErr
}

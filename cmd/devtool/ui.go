package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Outfitter_Go/internal/config"
	"github.com/osse101/Outfitter_Go/internal/database"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

func PrintInfo(format string, a ...any) {
	fmt.Printf(colorBlue+"i "+format+colorReset+"\n", a...)
}

func PrintSuccess(format string, a ...any) {
	fmt.Printf(colorGreen+"ok "+format+colorReset+"\n", a...)
}

func PrintError(format string, a ...any) {
	fmt.Printf(colorRed+"x "+format+colorReset+"\n", a...)
}

func PrintHeader(title string) {
	fmt.Printf("\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}

// connect opens a small pool using the application configuration
func connect(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

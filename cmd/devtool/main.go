package main

import (
	"os"
)

func main() {
	registry := NewRegistry()
	registry.Register(&MigrateCommand{})
	registry.Register(&CheckDBCommand{})
	registry.Register(&CatalogCommand{})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}

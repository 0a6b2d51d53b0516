package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := NewRegistry()
	registry.Register(&MigrateCommand{})
	registry.Register(&WaitForDBCommand{})
	registry.Register(&GenKeyCommand{})
	registry.Register(&CheckCoverageCommand{})

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

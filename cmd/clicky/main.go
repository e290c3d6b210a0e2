package main

import (
	"fmt"
	"os"

	"github.com/bohnfeli/clicky/internal/commands"
	"github.com/bohnfeli/clicky/internal/config"
)

func main() {
	configPath, err := config.Path()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating config: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := commands.Execute(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

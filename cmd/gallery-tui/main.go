package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/artist-gallery/internal/config"
	"github.com/handiism/artist-gallery/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "config file (default $"+config.EnvConfigPath+")")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

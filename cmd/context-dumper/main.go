package main

import (
	"github.com/bethropolis/context-dumper/internal/app"
	"github.com/bethropolis/context-dumper/internal/config"
)

func main() {
	// Load configuration from command-line flags
	cfg := config.New()

	// Create and run the application
	app.New(cfg).Run()
}

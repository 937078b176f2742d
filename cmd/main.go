// Package main is the production entry point for the aboutdocs About dialog.
//
// aboutdocs shows product information and a tab per documentation file
// (change log, readme, licence) found next to the executable:
// - Markdown files are rendered, other files shown as plain text
// - Each document is read once, when its tab is first selected
// - Missing files are reported inside their tab
//
// Build:
//
//	go build -o build/aboutdocs ./cmd
//
// Run:
//
//	ABOUTDOCS_CONFIG=aboutdocs.yaml ./build/aboutdocs
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tejashwikalptaru/aboutdocs/internal/app"
)

func main() {
	config, err := app.LoadConfig(app.ConfigPath())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Documents live beside the executable unless configured otherwise
	if config.BaseDir == "" {
		exe, err := os.Executable()
		if err != nil {
			log.Fatalf("Failed to locate executable: %v", err)
		}
		config.BaseDir = filepath.Dir(exe)
	}

	// Create the application with dependency injection
	application, err := app.NewApplication(config)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Ensure a graceful shutdown
	defer func() {
		application.Shutdown()
		fmt.Println("Shutdown complete")
	}()

	// Run application (blocks until the window closed)
	application.Run()
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdxmph/planner-tui/internal/config"
	"github.com/pdxmph/planner-tui/internal/store"
	"github.com/pdxmph/planner-tui/internal/tui"
)

func main() {
	initFlag := flag.Bool("init", false, "create the task database and exit")
	fixturesFlag := flag.Bool("fixtures", false, "create the task database with sample tasks and exit")
	dbFlag := flag.String("db", "", "path to the task database (overrides config)")
	backendFlag := flag.String("backend", "", "snapshot backend: sqlite, file or memory (overrides config)")
	configFlag := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configFlag != "" {
		cfg, err = config.LoadFrom(*configFlag)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatal(err)
	}

	if *dbFlag != "" {
		cfg.Storage.Path = *dbFlag
	}
	if *backendFlag != "" {
		cfg.Storage.Backend = *backendFlag
	}

	if *initFlag {
		if err := store.Initialize(cfg.Storage.Path); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Created task database at %s\n", cfg.Storage.Path)
		return
	}

	if *fixturesFlag {
		if err := store.CreateFixturesDatabase(cfg.Storage.Path); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Created sample task database at %s\n", cfg.Storage.Path)
		return
	}

	// Open the task store
	s, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	// Create model
	model, err := tui.New(s, cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Start the program
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

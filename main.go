package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/soumyasagarnayak/appvault/internal/config"
	"github.com/soumyasagarnayak/appvault/internal/database"
	"github.com/soumyasagarnayak/appvault/internal/logging"
	"github.com/soumyasagarnayak/appvault/internal/tui"
	"github.com/soumyasagarnayak/appvault/internal/tui/theme"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	theme.Init(cfg.ColorScheme)

	ctx := context.Background()

	// Initialize database
	db, err := database.InitDB(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Create repository wrapping the database
	repo := database.NewRepository(db)

	// Create initial TUI model with repository
	model := tui.InitialModel(ctx, repo, cfg)

	// Create and run Bubble Tea program
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}

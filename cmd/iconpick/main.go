package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"iconpick/internal/config"
	"iconpick/internal/corpus"
	"iconpick/internal/eventbus"
	"iconpick/internal/normalize"
	"iconpick/internal/search"
	"iconpick/internal/storage"
	"iconpick/internal/theme"
	"iconpick/internal/ui"
	"iconpick/internal/used"
)

// Minimal entry point: the root main.go carries the full demo wiring
// (page flag, store override); this one runs the picker with defaults.
func main() {
	logFile, err := os.OpenFile("iconpick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	store := storage.NewFileStore(cfg.StorePath)
	bus := eventbus.New()

	engine := normalize.New(
		corpus.HasEmojiID,
		func(ch string) (string, bool) {
			e, ok := corpus.EmojiByChar(ch)
			return e.ID, ok
		},
		theme.DefaultAvatarColors,
	)

	usedCache := used.New(store, engine, bus)
	searchSvc := search.NewService()

	ctrl := ui.NewController(searchSvc, usedCache, engine, store, bus, nil)
	ctrl.SetShowRecent(cfg.UISettings.ShowRecentlyUsed)
	ctrl.SetTab(cfg.Tab())
	ctrl.ApplyDefaultListing()

	model := ui.NewModel(ctrl, "iconpick")

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	if m, ok := finalModel.(ui.Model); ok && m.Chosen != nil {
		fmt.Println(m.Chosen.ID)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"iconpick/internal/config"
	"iconpick/internal/corpus"
	"iconpick/internal/domain"
	"iconpick/internal/eventbus"
	"iconpick/internal/normalize"
	"iconpick/internal/search"
	"iconpick/internal/storage"
	"iconpick/internal/theme"
	"iconpick/internal/ui"
	"iconpick/internal/used"
)

// page is the demo entity the picked icon is attached to
type page struct {
	Name string
	Icon *domain.IconItem
}

func (p *page) SetIcon(item domain.IconItem) { p.Icon = &item }

func main() {
	var pageName string
	var storePath string
	flag.StringVar(&pageName, "page", "Untitled Page", "Name of the page to pick an icon for")
	flag.StringVar(&storePath, "store", "", "Override the key-value store location")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("iconpick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if storePath != "" {
		cfg.StorePath = storePath
	}

	store := storage.NewFileStore(cfg.StorePath)
	bus := eventbus.New()

	// Log the interesting lifecycle events
	bus.Subscribe(eventbus.EventIconChosen, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.IconChosenEvent); ok {
			log.Printf("Icon chosen: %s", event.Item.ID)
		}
	})
	bus.Subscribe(eventbus.EventUsedListMigrated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.UsedListMigratedEvent); ok {
			log.Printf("Legacy used list migrated: %d items", event.Migrated)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})

	altMode := cfg.UISettings.AltColorMode
	engine := normalize.New(
		corpus.HasEmojiID,
		func(ch string) (string, bool) {
			e, ok := corpus.EmojiByChar(ch)
			return e.ID, ok
		},
		func() (string, string) {
			return theme.VariableColor("gray", 100, altMode), theme.VariableColor("gray", 700, altMode)
		},
	)

	usedCache := used.New(store, engine, bus)
	searchSvc := search.NewService()

	target := &page{Name: pageName}
	ctrl := ui.NewController(searchSvc, usedCache, engine, store, bus, target.SetIcon)
	ctrl.SetAvatarSeed(target.Name)
	ctrl.SetShowRecent(cfg.UISettings.ShowRecentlyUsed)
	ctrl.SetTab(cfg.Tab())
	ctrl.ApplyDefaultListing()

	model := ui.NewModel(ctrl, fmt.Sprintf("iconpick: %s", target.Name))

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	if m, ok := finalModel.(ui.Model); ok && m.Chosen != nil {
		fmt.Printf("%s: %s\n", target.Name, m.Chosen.ID)
	}
}

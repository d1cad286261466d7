// Package used maintains the bounded recently-used icon list behind
// the picker, including the one-shot migration from the legacy storage
// format.
package used

import (
	"encoding/json"
	"log"

	"iconpick/internal/domain"
	"iconpick/internal/eventbus"
	"iconpick/internal/normalize"
	"iconpick/internal/storage"
)

// maxRetained is how many previous entries survive an Add; with the new
// item prepended the list never exceeds maxRetained+1 entries.
const maxRetained = 24

// Cache is the recently-used list, most-recent-first, deduplicated by
// item id and persisted through the key-value store.
type Cache struct {
	store  storage.Store
	engine *normalize.Engine
	bus    eventbus.EventBus
}

// New creates a used-items cache. The bus is optional.
func New(store storage.Store, engine *normalize.Engine, bus eventbus.EventBus) *Cache {
	return &Cache{store: store, engine: engine, bus: bus}
}

// Get returns the recently-used list. When the current-format key is
// empty it reads the legacy-format list once, normalizes every entry,
// and writes the result back under the current key, so the legacy key
// is never consulted again after a successful migration.
func (c *Cache) Get() []domain.IconItem {
	if items, ok := c.readCurrent(); ok && len(items) > 0 {
		return items
	}
	return c.migrateLegacy()
}

// Add normalizes the raw value and prepends it to the list, dropping
// any previous entry with the same id and trimming the carried-over
// entries to the most-recent 24.
func (c *Cache) Add(raw any) {
	item := c.engine.Normalize(raw)
	if item == nil {
		return
	}

	prev := c.Get()
	if len(prev) > maxRetained {
		prev = prev[:maxRetained]
	}

	next := make([]domain.IconItem, 0, len(prev)+1)
	next = append(next, *item)
	for _, p := range prev {
		if p.ID == item.ID {
			continue
		}
		next = append(next, p)
	}

	if err := c.store.Set(storage.KeyUsedItems, next); err != nil {
		log.Printf("Could not persist used items: %v", err)
		return
	}
	if c.bus != nil {
		c.bus.Publish(eventbus.UsedListChangedEvent{Count: len(next)})
	}
}

func (c *Cache) readCurrent() ([]domain.IconItem, bool) {
	raw, ok := c.store.Get(storage.KeyUsedItems)
	if !ok {
		return nil, false
	}

	var items []domain.IconItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// Malformed persisted state degrades to an empty list
		log.Printf("Malformed used-items list, ignoring: %v", err)
		return nil, false
	}
	return items, true
}

// migrateLegacy reads the legacy-format list, normalizes it, and writes
// it back under the current key. Idempotent: once the current key holds
// a non-empty list, Get never reaches this path again.
func (c *Cache) migrateLegacy() []domain.IconItem {
	raw, ok := c.store.Get(storage.KeyUsedItemsLegacy)
	if !ok {
		return []domain.IconItem{}
	}

	var entries []any
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("Malformed legacy used-items list, ignoring: %v", err)
		return []domain.IconItem{}
	}

	items := make([]domain.IconItem, 0, len(entries))
	for _, entry := range entries {
		if item := c.engine.Normalize(entry); item != nil {
			items = append(items, *item)
		}
	}
	if len(items) == 0 {
		return items
	}

	if err := c.store.Set(storage.KeyUsedItems, items); err != nil {
		log.Printf("Could not write migrated used items: %v", err)
		return items
	}
	if c.bus != nil {
		c.bus.Publish(eventbus.UsedListMigratedEvent{Migrated: len(items)})
	}
	log.Printf("Migrated %d legacy used items", len(items))
	return items
}

package ui

import (
	"strings"
	"time"
	"unicode"

	"iconpick/internal/corpus"
	"iconpick/internal/domain"
	"iconpick/internal/eventbus"
	"iconpick/internal/normalize"
	"iconpick/internal/search"
	"iconpick/internal/storage"
	"iconpick/internal/theme"
	"iconpick/internal/ui/grid"
	"iconpick/internal/used"
)

// SearchDebounce bounds how often query edits turn into searches
const SearchDebounce = 200 * time.Millisecond

// How many corpus rows the all-tab default listing shows per source
const defaultListingRows = 6

// SelectionFn receives the chosen canonical item
type SelectionFn func(domain.IconItem)

// Controller orchestrates the picker: it owns the query text, the
// active tab, the last applied search result and the pending color
// override, and wires selections back through the callback and the
// used-items cache.
type Controller struct {
	searchSvc *search.Service
	usedCache *used.Cache
	engine    *normalize.Engine
	store     storage.Store
	bus       eventbus.EventBus
	onSelect  SelectionFn

	query         string
	tab           domain.Tab
	result        search.Result
	generation    uint64
	presetName    string
	colorOverride string
	avatarSeed    string
	showRecent    bool

	sections []grid.Section
	nav      *grid.Navigator
}

// NewController wires the picker engine together. The last-selected
// color preset is restored from storage.
func NewController(searchSvc *search.Service, usedCache *used.Cache, engine *normalize.Engine, store storage.Store, bus eventbus.EventBus, onSelect SelectionFn) *Controller {
	c := &Controller{
		searchSvc:  searchSvc,
		usedCache:  usedCache,
		engine:     engine,
		store:      store,
		bus:        bus,
		onSelect:   onSelect,
		tab:        domain.TabAll,
		showRecent: true,
		nav:        grid.NewNavigator(),
	}
	c.restorePreset()
	c.ApplyDefaultListing()
	return c
}

// SetShowRecent toggles the "Recently used" section in default listings
func (c *Controller) SetShowRecent(show bool) {
	c.showRecent = show
}

// Query returns the current query text
func (c *Controller) Query() string { return c.query }

// Tab returns the active tab
func (c *Controller) Tab() domain.Tab { return c.tab }

// Navigator returns the grid focus state machine
func (c *Controller) Navigator() *grid.Navigator { return c.nav }

// Sections returns the currently rendered result sections
func (c *Controller) Sections() []grid.Section { return c.sections }

// Generation returns the latest issued search generation
func (c *Controller) Generation() uint64 { return c.generation }

// PresetName returns the active color preset, "" when none
func (c *Controller) PresetName() string { return c.presetName }

// SetAvatarSeed sets the entity name avatars derive their initials from
func (c *Controller) SetAvatarSeed(name string) {
	c.avatarSeed = name
}

// SetQuery records a query edit and bumps the search generation so any
// in-flight search is superseded. Returns the new generation for the
// debounce timer to carry.
func (c *Controller) SetQuery(query string) uint64 {
	c.query = query
	c.generation++
	if c.bus != nil {
		c.bus.Publish(eventbus.QueryChangedEvent{Query: query})
	}
	return c.generation
}

// SetTab switches the active tab, resetting query and result state
func (c *Controller) SetTab(tab domain.Tab) {
	if tab == c.tab {
		return
	}
	c.tab = tab
	c.query = ""
	c.result = search.Result{}
	c.generation++
	if c.bus != nil {
		c.bus.Publish(eventbus.TabChangedEvent{Tab: tab})
	}
	c.ApplyDefaultListing()
}

// CycleTab advances to the next tab in display order
func (c *Controller) CycleTab() {
	tabs := domain.Tabs()
	for i, t := range tabs {
		if t == c.tab {
			c.SetTab(tabs[(i+1)%len(tabs)])
			return
		}
	}
	c.SetTab(tabs[0])
}

// BlankQuery reports whether the query is empty or whitespace
func (c *Controller) BlankQuery() bool {
	return strings.TrimSpace(c.query) == ""
}

// ApplyResult stores a completed search result unless a newer search
// has been issued since; a stale completion must never overwrite
// fresher state. Returns whether the result was applied.
func (c *Controller) ApplyResult(generation uint64, result search.Result) bool {
	if generation != c.generation {
		return false
	}
	c.result = result
	c.rebuildFromResult()
	if c.bus != nil {
		c.bus.Publish(eventbus.SearchCompletedEvent{
			Query:      c.query,
			Generation: generation,
			IconCount:  len(result.Icons),
			EmojiCount: len(result.Emojis),
		})
	}
	return true
}

// ApplyDefaultListing replaces the sections with the blank-query
// default for the active tab: the recently-used list plus a slice of
// the tab's corpus.
func (c *Controller) ApplyDefaultListing() {
	c.result = search.Result{}

	var sections []grid.Section
	if usedItems := c.usedForTab(); c.showRecent && len(usedItems) > 0 {
		sections = append(sections, grid.Section{Title: "Recently used", Items: usedItems})
	}

	switch c.tab {
	case domain.TabAll:
		limit := defaultListingRows * grid.RowWidth
		sections = append(sections,
			grid.Section{Title: "Icons", Items: glyphItems(limit)},
			grid.Section{Title: "Emojis", Items: emojiItems(limit)},
		)
	case domain.TabIcon:
		sections = append(sections, grid.Section{Title: "Icons", Items: glyphItems(0)})
	case domain.TabEmoji:
		sections = append(sections, grid.Section{Title: "Emojis", Items: emojiItems(0)})
	case domain.TabAvatar:
		if item := c.avatarItem(); item != nil {
			sections = append(sections, grid.Section{Title: "Avatar", Items: []domain.IconItem{*item}})
		}
	case domain.TabText:
		// No corpus: the query itself becomes the icon on Enter
	}

	c.setSections(sections)
}

// rebuildFromResult turns the last search result into sections
func (c *Controller) rebuildFromResult() {
	var sections []grid.Section
	if len(c.result.Icons) > 0 {
		sections = append(sections, grid.Section{Title: "Icons", Items: c.result.Icons})
	}
	if len(c.result.Emojis) > 0 {
		sections = append(sections, grid.Section{Title: "Emojis", Items: c.result.Emojis})
	}
	c.setSections(sections)
}

func (c *Controller) setSections(sections []grid.Section) {
	inGrid := c.nav.InGrid()
	c.sections = sections
	c.nav.Rebuild(sections)
	// Rebuild focuses the first real item; while the user is editing
	// the query, keyboard focus belongs to the input, so only keep the
	// grid focus when it was already there.
	if !inGrid {
		c.nav.FocusInput()
	}
}

// Select normalizes the chosen raw value, applies the pending color
// override (icon type only), fires the selection callback and records
// the item in the used list.
func (c *Controller) Select(raw any) *domain.IconItem {
	item := c.engine.Normalize(raw)
	if item == nil {
		return nil
	}

	if item.Type == domain.TypeIcon && c.colorOverride != "" {
		withColor := item.WithColor(c.colorOverride)
		item = &withColor
	}

	if c.bus != nil {
		c.bus.Publish(eventbus.IconChosenEvent{Item: *item})
	}
	if c.onSelect != nil {
		c.onSelect(*item)
	}
	c.usedCache.Add(*item)
	return item
}

// SelectText selects the current query text as a literal text icon;
// only meaningful on the text tab
func (c *Controller) SelectText() *domain.IconItem {
	if c.BlankQuery() {
		return nil
	}
	return c.Select(map[string]any{
		"type":  string(domain.TypeText),
		"value": strings.TrimSpace(c.query),
	})
}

// CyclePreset advances to the next color preset and persists it
func (c *Controller) CyclePreset() string {
	names := theme.PresetNames()
	next := names[0]
	for i, name := range names {
		if name == c.presetName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	c.setPreset(next)
	return next
}

func (c *Controller) setPreset(name string) {
	c.presetName = name
	c.colorOverride = theme.PresetColor(name)
	if err := c.store.Set(storage.KeyColorPreset, name); err == nil && c.bus != nil {
		c.bus.Publish(eventbus.ColorPresetSetEvent{Preset: name})
	}
}

func (c *Controller) restorePreset() {
	raw, ok := c.store.Get(storage.KeyColorPreset)
	if !ok {
		return
	}
	name := strings.Trim(string(raw), `"`)
	if name == "" {
		return
	}
	c.presetName = name
	c.colorOverride = theme.PresetColor(name)
}

// usedForTab filters the recently-used list down to the active tab
func (c *Controller) usedForTab() []domain.IconItem {
	items := c.usedCache.Get()
	if c.tab == domain.TabAll {
		return items
	}
	filtered := make([]domain.IconItem, 0, len(items))
	for _, item := range items {
		if item.Type == domain.IconType(c.tab) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// avatarItem derives an avatar from the entity name's initials
func (c *Controller) avatarItem() *domain.IconItem {
	initials := avatarInitials(c.avatarSeed)
	if initials == "" {
		return nil
	}
	return c.engine.Normalize(map[string]any{
		"type":  string(domain.TypeAvatar),
		"value": initials,
	})
}

func avatarInitials(name string) string {
	fields := strings.Fields(name)
	var b strings.Builder
	for i, f := range fields {
		if i == 2 {
			break
		}
		r := []rune(f)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// glyphItems maps the leading glyph corpus entries to icon items;
// limit 0 means the whole corpus
func glyphItems(limit int) []domain.IconItem {
	glyphs := corpus.Glyphs()
	if limit <= 0 || limit > len(glyphs) {
		limit = len(glyphs)
	}
	items := make([]domain.IconItem, 0, limit)
	for _, g := range glyphs[:limit] {
		items = append(items, domain.NewIconItem(domain.TypeIcon, g.Name))
	}
	return items
}

// emojiItems maps the leading emoji catalog entries to emoji items;
// limit 0 means the whole catalog
func emojiItems(limit int) []domain.IconItem {
	emojis := corpus.Emojis()
	if limit <= 0 || limit > len(emojis) {
		limit = len(emojis)
	}
	items := make([]domain.IconItem, 0, limit)
	for _, e := range emojis[:limit] {
		item := domain.NewIconItem(domain.TypeEmoji, e.ID)
		item.Label = e.Name
		items = append(items, item)
	}
	return items
}

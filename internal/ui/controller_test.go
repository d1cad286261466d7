package ui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iconpick/internal/corpus"
	"iconpick/internal/domain"
	"iconpick/internal/normalize"
	"iconpick/internal/search"
	"iconpick/internal/storage"
	"iconpick/internal/theme"
	"iconpick/internal/used"
)

func testController(t *testing.T, onSelect SelectionFn) (*Controller, *used.Cache) {
	t.Helper()
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	engine := normalize.New(
		corpus.HasEmojiID,
		func(ch string) (string, bool) {
			e, ok := corpus.EmojiByChar(ch)
			return e.ID, ok
		},
		theme.DefaultAvatarColors,
	)
	cache := used.New(store, engine, nil)
	ctrl := NewController(search.NewService(), cache, engine, store, nil, onSelect)
	return ctrl, cache
}

func TestController_DefaultListingOnAllTab(t *testing.T) {
	ctrl, _ := testController(t, nil)

	sections := ctrl.Sections()
	require.Len(t, sections, 2, "no recently-used yet: icons and emojis")
	assert.Equal(t, "Icons", sections[0].Title)
	assert.Equal(t, "Emojis", sections[1].Title)
	assert.False(t, ctrl.Navigator().InGrid(), "focus starts on the input")
}

func TestController_StaleResultDropped(t *testing.T) {
	ctrl, _ := testController(t, nil)

	stale := ctrl.SetQuery("arr")
	fresh := ctrl.SetQuery("arrow")
	require.NotEqual(t, stale, fresh)

	applied := ctrl.ApplyResult(stale, search.Result{
		Icons: []domain.IconItem{domain.NewIconItem(domain.TypeIcon, "bell")},
	})
	assert.False(t, applied, "superseded search must not overwrite state")

	applied = ctrl.ApplyResult(fresh, search.Result{
		Icons: []domain.IconItem{domain.NewIconItem(domain.TypeIcon, "arrow-up")},
	})
	require.True(t, applied)
	require.Len(t, ctrl.Sections(), 1)
	assert.Equal(t, "icon-arrow-up", ctrl.Sections()[0].Items[0].ID)
}

func TestController_SetTabResetsQuery(t *testing.T) {
	ctrl, _ := testController(t, nil)

	ctrl.SetQuery("arrow")
	ctrl.SetTab(domain.TabEmoji)

	assert.True(t, ctrl.BlankQuery())
	assert.Equal(t, domain.TabEmoji, ctrl.Tab())
	require.Len(t, ctrl.Sections(), 1)
	assert.Equal(t, "Emojis", ctrl.Sections()[0].Title)
}

func TestController_CycleTabWrapsAround(t *testing.T) {
	ctrl, _ := testController(t, nil)

	seen := map[domain.Tab]bool{ctrl.Tab(): true}
	for i := 0; i < len(domain.Tabs())-1; i++ {
		ctrl.CycleTab()
		seen[ctrl.Tab()] = true
	}
	assert.Len(t, seen, len(domain.Tabs()), "cycling visits every tab once")

	ctrl.CycleTab()
	assert.Equal(t, domain.TabAll, ctrl.Tab())
}

func TestController_SelectNormalizesAndRecords(t *testing.T) {
	var chosen *domain.IconItem
	ctrl, cache := testController(t, func(item domain.IconItem) { chosen = &item })

	item := ctrl.Select("grinning")
	require.NotNil(t, item)
	assert.Equal(t, "emoji-grinning", item.ID)

	require.NotNil(t, chosen, "selection callback fires")
	assert.Equal(t, item.ID, chosen.ID)

	recorded := cache.Get()
	require.Len(t, recorded, 1)
	assert.Equal(t, "emoji-grinning", recorded[0].ID)
}

func TestController_SelectAppliesPresetToIconsOnly(t *testing.T) {
	ctrl, _ := testController(t, nil)

	preset := ctrl.CyclePreset()
	require.NotEmpty(t, preset)

	icon := ctrl.Select("arrow-up")
	require.NotNil(t, icon)
	assert.Equal(t, theme.PresetColor(preset), icon.Data.Color)

	emoji := ctrl.Select("grinning")
	require.NotNil(t, emoji)
	assert.Empty(t, emoji.Data.Color, "presets never touch emoji selections")
}

func TestController_PresetPersistsAcrossControllers(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	engine := normalize.New(corpus.HasEmojiID, func(string) (string, bool) { return "", false }, theme.DefaultAvatarColors)
	cache := used.New(store, engine, nil)

	first := NewController(search.NewService(), cache, engine, store, nil, nil)
	preset := first.CyclePreset()

	second := NewController(search.NewService(), cache, engine, store, nil, nil)
	assert.Equal(t, preset, second.PresetName())
}

func TestController_SelectTextUsesQuery(t *testing.T) {
	ctrl, _ := testController(t, nil)
	ctrl.SetTab(domain.TabText)

	assert.Nil(t, ctrl.SelectText(), "blank query selects nothing")

	ctrl.SetQuery("  Hi  ")
	item := ctrl.SelectText()
	require.NotNil(t, item)
	assert.Equal(t, domain.TypeText, item.Type)
	assert.Equal(t, "Hi", item.Data.Value)
}

func TestController_AvatarTabDerivesInitials(t *testing.T) {
	ctrl, _ := testController(t, nil)
	ctrl.SetAvatarSeed("ada lovelace jr")
	ctrl.SetTab(domain.TabAvatar)

	sections := ctrl.Sections()
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Items, 1)

	item := sections[0].Items[0]
	assert.Equal(t, domain.TypeAvatar, item.Type)
	assert.Equal(t, "AL", item.Data.Value, "initials cap at two words")
	assert.NotEmpty(t, item.Data.Color)
	assert.NotEmpty(t, item.Data.BackgroundColor)
}

func TestController_RecentlyUsedSectionFiltersByTab(t *testing.T) {
	ctrl, _ := testController(t, nil)

	require.NotNil(t, ctrl.Select("grinning"))
	require.NotNil(t, ctrl.Select("arrow-up"))

	ctrl.SetTab(domain.TabEmoji)
	sections := ctrl.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "Recently used", sections[0].Title)
	require.Len(t, sections[0].Items, 1)
	assert.Equal(t, "emoji-grinning", sections[0].Items[0].ID)
}

func TestController_ShowRecentDisabled(t *testing.T) {
	ctrl, _ := testController(t, nil)

	require.NotNil(t, ctrl.Select("grinning"))
	ctrl.SetShowRecent(false)
	ctrl.ApplyDefaultListing()

	for _, s := range ctrl.Sections() {
		assert.NotEqual(t, "Recently used", s.Title)
	}
}

// Package corpus holds the two in-memory searchable collections the
// picker draws from: the glyph icon corpus derived from the icon font's
// code-point table, and the preloaded emoji catalog.
package corpus

import (
	_ "embed"
	"encoding/json"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/glyphs.json
var glyphsJSON []byte

// Glyph is one entry of the icon-font corpus
type Glyph struct {
	Name        string // font identifier, e.g. "arrow-up"
	DisplayName string // human-readable name, e.g. "arrow up"
	Codepoint   string // private-use-area codepoint, hex
}

// Names the font ships but renders broken or empty; excluded when the
// corpus is built.
var glyphDenylist = map[string]bool{
	"letter-case-toggle": true,
	"text-direction-rtl": true,
	"box-margin":         true,
}

var (
	glyphOnce   sync.Once
	glyphTable  []Glyph
	glyphByName map[string]Glyph
)

// Glyphs returns the glyph corpus, building it on first use. The built
// table is cached for the process lifetime; the UI runs single-threaded
// so unsynchronized reads after the build are safe, and sync.Once keeps
// the build itself one-shot.
func Glyphs() []Glyph {
	glyphOnce.Do(buildGlyphs)
	return glyphTable
}

// GlyphDisplayNames returns the searchable display names, index-aligned
// with Glyphs().
func GlyphDisplayNames() []string {
	glyphs := Glyphs()
	names := make([]string, len(glyphs))
	for i, g := range glyphs {
		names[i] = g.DisplayName
	}
	return names
}

func buildGlyphs() {
	var codepoints map[string]string
	if err := json.Unmarshal(glyphsJSON, &codepoints); err != nil {
		log.Printf("Could not parse embedded glyph table: %v", err)
		glyphTable = []Glyph{}
		return
	}

	glyphTable = make([]Glyph, 0, len(codepoints))
	for name, cp := range codepoints {
		if glyphDenylist[name] {
			continue
		}
		glyphTable = append(glyphTable, Glyph{
			Name:        name,
			DisplayName: strings.ReplaceAll(name, "-", " "),
			Codepoint:   cp,
		})
	}

	// Map iteration order is random; keep the corpus stable
	sort.Slice(glyphTable, func(i, j int) bool {
		return glyphTable[i].Name < glyphTable[j].Name
	})

	glyphByName = make(map[string]Glyph, len(glyphTable))
	for _, g := range glyphTable {
		glyphByName[g.Name] = g
	}

	log.Printf("Glyph corpus built: %d entries", len(glyphTable))
}

// GlyphByName looks up a corpus entry by its font identifier
func GlyphByName(name string) (Glyph, bool) {
	glyphOnce.Do(buildGlyphs)
	g, ok := glyphByName[name]
	return g, ok
}

// GlyphChar renders a glyph's codepoint as the character the icon font
// maps it to; empty when the name is unknown or the codepoint malformed
func GlyphChar(name string) string {
	g, ok := GlyphByName(name)
	if !ok {
		return ""
	}
	cp, err := strconv.ParseInt(g.Codepoint, 16, 32)
	if err != nil {
		return ""
	}
	return string(rune(cp))
}

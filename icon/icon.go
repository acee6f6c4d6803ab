// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, or Unicode
// squares depending on user preference. The same registry backs both the CLI
// and the chat transport, so feedback markers stay consistent everywhere.
package icon

import (
	"github.com/coursex-bot/coursex/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

// Get retrieves the visual representation for the receiver based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a symbol in the global registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Document
	Catalog
	Quality
)

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "❌", nerd: "", plain: "x", squares: "▨"},
	Success:  {emoji: "✅", nerd: "", plain: "+", squares: "▣"},
	Progress: {emoji: "🔄", nerd: "", plain: "~", squares: "▤"},
	Document: {emoji: "📁", nerd: "", plain: "=", squares: "▥"},
	Catalog:  {emoji: "📚", nerd: "", plain: "#", squares: "▦"},
	Quality:  {emoji: "🎬", nerd: "", plain: "@", squares: "▧"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}

package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beat-judge/core"
)

// KeyTable maps terminal keys to judge keys
type KeyTable struct {
	// Named keys (arrows, Enter)
	Keys map[tcell.Key]core.Key

	// Rune bindings, matched case-insensitively
	Runes map[rune]core.Key

	// Keys and runes that end the session
	QuitKeys  map[tcell.Key]bool
	QuitRunes map[rune]bool
}

// DefaultKeyTable returns the default bindings
// Home row and arrows for the four drums, space or Enter to close a sequence
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]core.Key{
			tcell.KeyLeft:  core.K1,
			tcell.KeyDown:  core.K2,
			tcell.KeyRight: core.K3,
			tcell.KeyUp:    core.K4,
			tcell.KeyEnter: core.KeyTerminator,
		},
		Runes: map[rune]core.Key{
			'a': core.K1,
			's': core.K2,
			'd': core.K3,
			'w': core.K4,
			' ': core.KeyTerminator,
		},
		QuitKeys: map[tcell.Key]bool{
			tcell.KeyEscape: true,
			tcell.KeyCtrlC:  true,
		},
		QuitRunes: map[rune]bool{
			'q': true,
		},
	}
}

// Translate maps a key event's components to a judge key
func (kt *KeyTable) Translate(key tcell.Key, r rune) (core.Key, bool) {
	if key == tcell.KeyRune {
		k, ok := kt.Runes[unicode.ToLower(r)]
		return k, ok
	}
	k, ok := kt.Keys[key]
	return k, ok
}

// IsQuit reports whether the key ends the session
func (kt *KeyTable) IsQuit(key tcell.Key, r rune) bool {
	if key == tcell.KeyRune {
		return kt.QuitRunes[unicode.ToLower(r)]
	}
	return kt.QuitKeys[key]
}

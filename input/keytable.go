package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to movement directions
type KeyTable struct {
	// Special keys (arrows)
	SpecialKeys map[tcell.Key]Direction

	// Rune bindings, matched case-insensitively
	Runes map[rune]Direction
}

// DefaultKeyTable binds the arrow keys and WASD
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Direction{
			tcell.KeyLeft:  DirLeft,
			tcell.KeyRight: DirRight,
			tcell.KeyUp:    DirUp,
			tcell.KeyDown:  DirDown,
		},
		Runes: map[rune]Direction{
			'a': DirLeft,
			'd': DirRight,
			'w': DirUp,
			's': DirDown,
		},
	}
}

// Lookup returns the direction bound to ev
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Direction, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		d, ok := kt.Runes[r]
		return d, ok
	}
	d, ok := kt.SpecialKeys[ev.Key()]
	return d, ok
}

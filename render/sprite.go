package render

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/components"
)

// Sprite is a small block of glyphs, spaces are transparent
type Sprite []string

// Size returns the sprite width and height in cells
func (s Sprite) Size() (w, h int) {
	for _, row := range s {
		w = max(w, utf8.RuneCountInString(row))
	}
	return w, len(s)
}

var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'<': '>', '>': '<',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
}

// Mirror flips the sprite horizontally, swapping directional glyphs
func (s Sprite) Mirror() Sprite {
	w, _ := s.Size()
	out := make(Sprite, len(s))
	for i, row := range s {
		runes := []rune(row)
		for len(runes) < w {
			runes = append(runes, ' ')
		}
		flipped := make([]rune, w)
		for j, r := range runes {
			if m, ok := mirrored[r]; ok {
				r = m
			}
			flipped[w-1-j] = r
		}
		out[i] = string(flipped)
	}
	return out
}

// Player sprites face right
var playerSprites = map[components.PlayerAnim]Sprite{
	components.PlayerIdle: {" o ", "/|\\", "/ \\"},
	components.PlayerSide: {" o>", " |\\", " /|"},
	components.PlayerUp:   {"\\o/", " | ", "/ \\"},
	components.PlayerDown: {" o ", "/|\\", "| |"},
}

var enemySprites = map[components.EnemyAnim]Sprite{
	components.EnemyDown:  {"<o>", " v "},
	components.EnemyUp:    {" ^ ", "<o>"},
	components.EnemyRight: {"(o>", "/ \\"},
	components.EnemyLeft:  {"<o)", "/ \\"},
}

// Item glyphs
const (
	GlyphScrap      = '%'
	GlyphEnergyCell = '+'
	GlyphWall       = '#'
	GlyphGroundDot  = '.'
)

// PlayerSprite returns the astronaut for an animation state and facing
func PlayerSprite(anim components.PlayerAnim, facing components.Facing) Sprite {
	s, ok := playerSprites[anim]
	if !ok {
		s = playerSprites[components.PlayerIdle]
	}
	if facing == components.FacingLeft {
		return s.Mirror()
	}
	return s
}

// EnemySprite returns the creature for an animation state
func EnemySprite(anim components.EnemyAnim) Sprite {
	if s, ok := enemySprites[anim]; ok {
		return s
	}
	return enemySprites[components.EnemyDown]
}

// DrawSprite draws s centred on col, row, skipping rows above minRow
func DrawSprite(c *Canvas, col, row int, s Sprite, fg tcell.Color, minRow int) {
	w, h := s.Size()
	left, top := col-w/2, row-h/2
	for dy, line := range s {
		y := top + dy
		if y < minRow {
			continue
		}
		dx := 0
		for _, r := range line {
			if r != ' ' {
				c.SetFg(left+dx, y, r, fg)
			}
			dx++
		}
	}
}

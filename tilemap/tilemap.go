// Package tilemap parses the ASCII level layout into a solid-tile grid
package tilemap

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrMapUnavailable means the level has no usable ground, walls or bounds
var ErrMapUnavailable = errors.New("map unavailable")

const (
	TileWall   = '#'
	TileGround = '.'
)

// Map is a grid of tiles, solid tiles block bodies
type Map struct {
	cols, rows int
	tileSize   float64
	solid      []bool
}

// Parse builds a map from rows of tile characters
// Leading and trailing blank lines are ignored, every row must have the same width
func Parse(src string, tileSize float64) (*Map, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %v", ErrMapUnavailable, tileSize)
	}

	lines := strings.Split(strings.TrimSpace(src), "\n")
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r \t")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrMapUnavailable)
	}

	cols := len(rows[0])
	m := &Map{
		cols:     cols,
		rows:     len(rows),
		tileSize: tileSize,
		solid:    make([]bool, cols*len(rows)),
	}

	walls := 0
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrMapUnavailable, y, len(row), cols)
		}
		for x, ch := range row {
			switch ch {
			case TileWall:
				m.solid[y*cols+x] = true
				walls++
			case TileGround:
			default:
				return nil, fmt.Errorf("%w: unknown tile %q at %d,%d", ErrMapUnavailable, ch, x, y)
			}
		}
	}
	if walls == 0 {
		return nil, fmt.Errorf("%w: no wall layer", ErrMapUnavailable)
	}
	return m, nil
}

// Cols returns the map width in tiles
func (m *Map) Cols() int { return m.cols }

// Rows returns the map height in tiles
func (m *Map) Rows() int { return m.rows }

// TileSize returns the edge of one tile in world units
func (m *Map) TileSize() float64 { return m.tileSize }

// Width returns the map width in world units
func (m *Map) Width() float64 { return float64(m.cols) * m.tileSize }

// Height returns the map height in world units
func (m *Map) Height() float64 { return float64(m.rows) * m.tileSize }

// Solid reports whether the tile at col,row blocks movement
// Tiles outside the map are solid
func (m *Map) Solid(col, row int) bool {
	if col < 0 || row < 0 || col >= m.cols || row >= m.rows {
		return true
	}
	return m.solid[row*m.cols+col]
}

// SolidAt reports whether the world point x,y lies in a solid tile
func (m *Map) SolidAt(x, y float64) bool {
	return m.Solid(int(math.Floor(x/m.tileSize)), int(math.Floor(y/m.tileSize)))
}

// OverlapsSolid reports whether the box touches any solid tile
// Boxes are half-open so a box flush against a wall does not count
func (m *Map) OverlapsSolid(minX, minY, maxX, maxY float64) bool {
	c0 := int(math.Floor(minX / m.tileSize))
	r0 := int(math.Floor(minY / m.tileSize))
	c1 := int(math.Ceil(maxX/m.tileSize)) - 1
	r1 := int(math.Ceil(maxY/m.tileSize)) - 1
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if m.Solid(c, r) {
				return true
			}
		}
	}
	return false
}

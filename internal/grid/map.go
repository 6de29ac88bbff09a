// Package grid provides the static tile map the engine moves through.
// A Map never changes after construction and may be shared between sessions.
package grid

import (
	"errors"
	"fmt"
)

// CellKind classifies a single map cell.
type CellKind uint8

const (
	Floor CellKind = iota
	Wall
)

// String returns the cell kind name.
func (k CellKind) String() string {
	switch k {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// Construction errors.
var (
	ErrEmpty      = errors.New("grid: map has no cells")
	ErrRagged     = errors.New("grid: rows have different lengths")
	ErrOpenBorder = errors.New("grid: border cell is not a wall")
	ErrBadCell    = errors.New("grid: unknown cell")
)

// Map is a fixed-size grid of cells stored in row-major order: index = row*W + col.
// Every border cell is a Wall, so a point within one cell of any floor cell
// always lands inside the map.
type Map struct {
	w, h  int
	cells []CellKind
}

// New builds a map from rows of cells. All rows must have the same length
// and the outer ring must consist of walls.
func New(rows [][]CellKind) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	h := len(rows)
	w := len(rows[0])
	m := &Map{w: w, h: h, cells: make([]CellKind, 0, w*h)}

	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRagged, r, len(row), w)
		}
		m.cells = append(m.cells, row...)
	}

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			onBorder := r == 0 || c == 0 || r == h-1 || c == w-1
			if onBorder && m.cells[r*w+c] != Wall {
				return nil, fmt.Errorf("%w: (row %d, col %d)", ErrOpenBorder, r, c)
			}
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.w
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.h
}

// InBounds reports whether (row, col) is a cell of the map.
func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && row < m.h && col >= 0 && col < m.w
}

// CellAt returns the kind of the cell at (row, col).
// Coordinates outside the map read as Wall.
func (m *Map) CellAt(row, col int) CellKind {
	if !m.InBounds(row, col) {
		return Wall
	}
	return m.cells[row*m.w+col]
}

// IsWall is shorthand for CellAt(row, col) == Wall.
func (m *Map) IsWall(row, col int) bool {
	return m.CellAt(row, col) == Wall
}

// Rows returns a copy of the map as rows of cells.
func (m *Map) Rows() [][]CellKind {
	rows := make([][]CellKind, m.h)
	for r := range rows {
		rows[r] = make([]CellKind, m.w)
		copy(rows[r], m.cells[r*m.w:(r+1)*m.w])
	}
	return rows
}

// FloorCount returns the number of floor cells.
func (m *Map) FloorCount() int {
	n := 0
	for _, k := range m.cells {
		if k == Floor {
			n++
		}
	}
	return n
}

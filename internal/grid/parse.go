package grid

import (
	"fmt"
	"strings"
)

// Parse builds a map from text rows.
// '#' and '1' are walls; '.', '0' and ' ' are floor.
func Parse(layout []string) (*Map, error) {
	rows := make([][]CellKind, 0, len(layout))
	for r, line := range layout {
		row := make([]CellKind, 0, len(line))
		for c, ch := range []rune(line) {
			kind, ok := kindOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w %q at (row %d, col %d)", ErrBadCell, ch, r, c)
			}
			row = append(row, kind)
		}
		rows = append(rows, row)
	}
	return New(rows)
}

// MustParse is like Parse but panics on error. Intended for built-in layouts.
func MustParse(layout ...string) *Map {
	m, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return m
}

// Layout renders the map back into text rows using '#' and '.'.
func (m *Map) Layout() []string {
	out := make([]string, m.h)
	var sb strings.Builder
	for r := 0; r < m.h; r++ {
		sb.Reset()
		for c := 0; c < m.w; c++ {
			if m.cells[r*m.w+c] == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		out[r] = sb.String()
	}
	return out
}

func kindOf(ch rune) (CellKind, bool) {
	switch ch {
	case '#', '1':
		return Wall, true
	case '.', '0', ' ':
		return Floor, true
	default:
		return Floor, false
	}
}

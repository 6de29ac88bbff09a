// Package levels loads arenas: a grid map plus the player's starting pose.
// Arenas come from YAML or TOML files on disk or from the built-in set
// embedded in the binary.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/raycaster/internal/core"
	"github.com/vovakirdan/raycaster/internal/engine"
	"github.com/vovakirdan/raycaster/internal/grid"
	"github.com/vovakirdan/raycaster/internal/levels/formats"
)

//go:embed builtin
var builtinFS embed.FS

// Validation errors.
var (
	ErrNoID         = errors.New("levels: arena has no id")
	ErrStartBlocked = errors.New("levels: start is not on a floor cell")
	ErrNotFound     = errors.New("levels: arena not found")
)

// Arena is a validated arena definition.
type Arena struct {
	ID       string
	Name     string
	Map      *grid.Map
	Start    engine.Player
	FilePath string // empty for built-in arenas
}

// Title returns the display name, falling back to the ID.
func (a Arena) Title() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// FromFormat validates a parsed arena file and builds its map.
func FromFormat(f formats.Arena) (Arena, error) {
	if strings.TrimSpace(f.ID) == "" {
		return Arena{}, ErrNoID
	}

	m, err := grid.Parse(f.Layout)
	if err != nil {
		return Arena{}, fmt.Errorf("arena %s: %w", f.ID, err)
	}

	start := engine.Player{Pos: core.V(f.Start.X, f.Start.Y), Angle: f.Start.Angle}
	row, col := start.Pos.Cell()
	if m.CellAt(row, col) != grid.Floor {
		return Arena{}, fmt.Errorf("%w: arena %s, (%g, %g)", ErrStartBlocked, f.ID, f.Start.X, f.Start.Y)
	}

	return Arena{ID: f.ID, Name: f.Name, Map: m, Start: start}, nil
}

// Parse parses and validates arena data in the format named by ext.
func Parse(data []byte, ext string) (Arena, error) {
	f, err := formats.Parse(data, ext)
	if err != nil {
		return Arena{}, err
	}
	return FromFormat(f)
}

// Loader loads arenas from a file tree.
type Loader struct {
	fsys fs.FS
	Root string
}

// NewLoader creates a loader reading the directory root.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), Root: root}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, Root: "."}
}

// LoadAll recursively scans and loads all arena files.
// Invalid files are skipped. Returns arenas sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Arena, error) {
	var arenas []Arena

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.Supported(path.Ext(p)) {
			return nil
		}

		a, err := l.load(p)
		if err != nil {
			return nil
		}
		arenas = append(arenas, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sort.Slice(arenas, func(i, j int) bool {
		return arenas[i].ID < arenas[j].ID
	})
	return arenas, nil
}

// LoadByID loads a specific arena by ID.
func (l *Loader) LoadByID(id string) (Arena, error) {
	arenas, err := l.LoadAll()
	if err != nil {
		return Arena{}, err
	}
	for _, a := range arenas {
		if a.ID == id {
			return a, nil
		}
	}
	return Arena{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all arena IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	arenas, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(arenas))
	for i, a := range arenas {
		ids[i] = a.ID
	}
	return ids, nil
}

func (l *Loader) load(p string) (Arena, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Arena{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}
	a, err := Parse(data, path.Ext(p))
	if err != nil {
		return Arena{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}
	a.FilePath = filepath.Join(l.Root, filepath.FromSlash(p))
	return a, nil
}

// LoadFile loads a single arena file from disk.
func LoadFile(p string) (Arena, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Arena{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}
	a, err := Parse(data, filepath.Ext(p))
	if err != nil {
		return Arena{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}
	a.FilePath = p
	return a, nil
}

// Builtin returns the arenas embedded in the binary, sorted by ID.
func Builtin() []Arena {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	arenas, err := NewFSLoader(sub).LoadAll()
	if err != nil {
		panic(err)
	}
	for i := range arenas {
		arenas[i].FilePath = ""
	}
	return arenas
}

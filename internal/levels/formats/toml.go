package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOMLArena represents the TOML structure for an arena file.
//
//	id = "room"
//	name = "Room"
//	layout = ["#####", "#...#", "#####"]
//
//	[start]
//	x = 1.5
//	y = 1.5
//	angle = 4.71238898
type TOMLArena struct {
	ID     string   `toml:"id"`
	Name   string   `toml:"name"`
	Layout []string `toml:"layout"`
	Start  Start    `toml:"start"`
}

// ParseTOML parses a TOML arena file. Unknown keys are an error.
func ParseTOML(data []byte) (Arena, error) {
	var ta TOMLArena
	md, err := toml.Decode(string(data), &ta)
	if err != nil {
		return Arena{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Arena{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}
	return Arena(ta), nil
}

// Package diagfile renders parsed goban diagrams to SVG, PNG and JSON and
// reads diagram text files.
package diagfile

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"

	"github.com/gobandiag/goban-toolkit/pkg/goban"
)

// Style controls rendering: colors as #RRGGBB strings plus the font cell
// metrics used to size grid cells.
type Style struct {
	BoardColor string `toml:"board_color"`
	LineColor  string `toml:"line_color"`
	BlackColor string `toml:"black_color"`
	WhiteColor string `toml:"white_color"`
	MarkColor  string `toml:"mark_color"`
	LinkColor  string `toml:"link_color"`
	FontHeight int    `toml:"font_height"`
	FontWidth  int    `toml:"font_width"`
}

// DefaultStyle returns the classic goban palette with a 16x8 font cell.
func DefaultStyle() Style {
	return Style{
		BoardColor: "#DCB35C",
		LineColor:  "#000000",
		BlackColor: "#000000",
		WhiteColor: "#FFFFFF",
		MarkColor:  "#E01010",
		LinkColor:  "#0000C8",
		FontHeight: 16,
		FontWidth:  8,
	}
}

// StoneColor returns the fill for a stone of the given color.
func (s Style) StoneColor(c goban.Color) string {
	if c == goban.White {
		return s.WhiteColor
	}
	return s.BlackColor
}

// LoadStyle reads a TOML style file, applying its keys over the defaults so
// partial files are valid.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Style{}, fmt.Errorf("%s: failed to parse style: %w", path, err)
	}
	if s.FontHeight <= 0 || s.FontWidth <= 0 {
		return Style{}, fmt.Errorf("%s: font metrics must be positive", path)
	}
	return s, nil
}

// parseHexColor decodes #RGB or #RRGGBB into an opaque RGBA color. Malformed
// values fall back to black.
func parseHexColor(s string) color.RGBA {
	c := color.RGBA{A: 255}
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	digit := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	switch len(hex) {
	case 3:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			d, ok := digit(hex[i])
			if !ok {
				return color.RGBA{A: 255}
			}
			*dst = d*16 + d
		}
	case 6:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			hi, ok1 := digit(hex[2*i])
			lo, ok2 := digit(hex[2*i+1])
			if !ok1 || !ok2 {
				return color.RGBA{A: 255}
			}
			*dst = hi*16 + lo
		}
	}
	return c
}

// Package goban provides the core diagram model: parsing of the $$
// line notation into a normalized grid of tagged cells.
package goban

import (
	"math"
	"strconv"
	"strings"
)

// Sentinel is the normalized stand-in for all border glyphs (-, | and +).
const Sentinel = "*"

// Color identifies a stone color.
type Color int

const (
	Black Color = iota
	White
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// CellKind classifies a grid token. Every token is resolved exactly once,
// during normalization; renderers never re-derive the class.
type CellKind int

const (
	CellUnknown     CellKind = iota
	CellEmpty                // .
	CellHoshi                // , (reference point dot)
	CellCircle               // C (circled empty point)
	CellSquare               // S (squared empty point)
	CellBorder               // normalized border sentinel
	CellBlack                // X
	CellBlackCircle          // B
	CellBlackSquare          // #
	CellWhite                // O
	CellWhiteCircle          // W
	CellWhiteSquare          // @
	CellNumber               // numbered move
	CellLetter               // a-z point label
	CellMarkup               // reserved markup characters, not drawn
)

// markupChars are reserved by the notation but render nothing. They are an
// enumerated set rather than a numeric-parse fallthrough.
const markupChars = "YQZPTM"

// Cell is one resolved grid token.
type Cell struct {
	Kind   CellKind
	Number int    // move number, valid when Kind is CellNumber
	Letter byte   // point label, valid when Kind is CellLetter
	Token  string // original token text
}

// classify resolves a single grid token into a tagged cell.
func classify(token string) Cell {
	c := Cell{Token: token}
	switch token {
	case Sentinel:
		c.Kind = CellBorder
		return c
	case ".":
		c.Kind = CellEmpty
		return c
	case ",":
		c.Kind = CellHoshi
		return c
	case "C":
		c.Kind = CellCircle
		return c
	case "S":
		c.Kind = CellSquare
		return c
	case "X":
		c.Kind = CellBlack
		return c
	case "B":
		c.Kind = CellBlackCircle
		return c
	case "#":
		c.Kind = CellBlackSquare
		return c
	case "O":
		c.Kind = CellWhite
		return c
	case "W":
		c.Kind = CellWhiteCircle
		return c
	case "@":
		c.Kind = CellWhiteSquare
		return c
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		c.Kind = CellNumber
		c.Number = n
		return c
	}
	if len(token) == 1 {
		ch := token[0]
		if ch >= 'a' && ch <= 'z' {
			c.Kind = CellLetter
			c.Letter = ch
			return c
		}
		if strings.IndexByte(markupChars, ch) >= 0 {
			c.Kind = CellMarkup
			return c
		}
	}
	c.Kind = CellUnknown
	return c
}

// MoveColor returns the color playing the given move number. Odd moves take
// the diagram's first color; even moves (and the literal 0, which stands for
// move 10) take the opposite.
func MoveColor(number int, first Color) Color {
	if number%2 == 1 {
		return first
	}
	return first.Other()
}

// MoveLabel returns the display text for a move number. The literal 0 is a
// notation shorthand for move 10.
func MoveLabel(number int) string {
	if number == 0 {
		return "10"
	}
	return strconv.Itoa(number)
}

// CellDiameter is the pixel diameter of one grid cell for the given font
// metrics: the Euclidean norm of the cell height and width, floored.
func CellDiameter(fontH, fontW int) int {
	return int(math.Sqrt(float64(fontH*fontH + fontW*fontW)))
}

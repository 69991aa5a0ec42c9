package goban

import (
	"errors"
	"regexp"
	"strings"
)

// ErrDegenerateGrid is the fatal normalization failure: an empty or inverted
// cell span after border detection.
var ErrDegenerateGrid = errors.New("goban: degenerate diagram grid")

// Grid is the normalized rectangular token grid with its detected borders.
// StartRow..EndRow and StartCol..EndCol bound the visible cells; border
// tokens sit outside that span.
type Grid struct {
	rows  [][]string
	cells [][]Cell

	StartRow, EndRow int
	StartCol, EndCol int

	// Border flags, set by probing the sentinel at the grid extremes.
	Top, Bottom, Left, Right bool
}

var (
	borderGlyphRe = regexp.MustCompile(`[-|+]`)
	newlineRunRe  = regexp.MustCompile(`\n+`)
	stripRe       = regexp.MustCompile(`[\t\r$]`)
)

// normalize turns the accumulated diagram body into a token grid and runs
// border detection. The returned error is fatal for the diagram.
func normalize(body string) (*Grid, error) {
	s := borderGlyphRe.ReplaceAllString(body, Sentinel)
	s = stripRe.ReplaceAllString(s, "")
	s = newlineRunRe.ReplaceAllString(s, "\n")
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	g := &Grid{}
	for _, line := range strings.Split(s, "\n") {
		g.rows = append(g.rows, tokenize(line))
	}
	g.detectBorders()
	if g.StartRow > g.EndRow || g.StartCol > g.EndCol {
		return nil, ErrDegenerateGrid
	}
	g.cells = make([][]Cell, len(g.rows))
	for i, row := range g.rows {
		g.cells[i] = make([]Cell, len(row))
		for j, tok := range row {
			g.cells[i][j] = classify(tok)
		}
	}
	return g, nil
}

// tokenize splits one line into cell tokens. A line holding an interior
// space and a digit, with no line-continuation marker, is non-compact:
// space-separated multi-character tokens, the only representation for move
// numbers of two or more digits. Everything else is compact, one character
// per cell.
func tokenize(line string) []string {
	trimmed := strings.TrimSpace(line)
	if strings.Contains(trimmed, " ") &&
		strings.ContainsAny(trimmed, "0123456789") &&
		!strings.Contains(trimmed, "{") {
		return strings.Fields(trimmed)
	}
	compact := strings.ReplaceAll(trimmed, " ", "")
	toks := make([]string, 0, len(compact))
	for _, r := range compact {
		toks = append(toks, string(r))
	}
	return toks
}

// detectBorders probes the grid extremes for the sentinel. The probes are
// order-sensitive: top and bottom fix the row used for the left and right
// probes. Probe positions avoid index 0 and the last index where the
// orthogonal border may sit.
func (g *Grid) detectBorders() {
	g.StartRow, g.EndRow = 0, len(g.rows)-1
	g.StartCol, g.EndCol = 0, -1

	if first := g.rows[0]; len(first) > 1 && first[1] == Sentinel {
		g.Top = true
		g.StartRow++
	}
	if last := g.rows[len(g.rows)-1]; len(last) > 1 && last[len(last)-2] == Sentinel {
		g.Bottom = true
		g.EndRow--
	}
	if g.StartRow > g.EndRow || g.StartRow >= len(g.rows) {
		return
	}
	row := g.rows[g.StartRow]
	if len(row) > 0 && row[0] == Sentinel {
		g.Left = true
		g.StartCol = 1
	}
	g.EndCol = len(row) - 1
	if g.EndCol >= 0 && row[g.EndCol] == Sentinel {
		g.Right = true
		g.EndCol--
	}
}

// RowSpan is the number of visible rows.
func (g *Grid) RowSpan() int { return g.EndRow - g.StartRow + 1 }

// ColSpan is the number of visible columns.
func (g *Grid) ColSpan() int { return g.EndCol - g.StartCol + 1 }

// CellAt returns the resolved cell at the given grid position. Positions
// outside the grid (including ragged short rows) read as CellUnknown.
func (g *Grid) CellAt(row, col int) Cell {
	if row < 0 || row >= len(g.cells) {
		return Cell{Kind: CellUnknown}
	}
	if col < 0 || col >= len(g.cells[row]) {
		return Cell{Kind: CellUnknown}
	}
	return g.cells[row][col]
}

// isBorder reports whether the grid position holds the border sentinel.
// Out-of-grid positions do not.
func (g *Grid) isBorder(row, col int) bool {
	return g.CellAt(row, col).Kind == CellBorder
}

// IntersectionType records which of the four line segments of an empty
// intersection are drawn. A border sentinel in a neighboring cell suppresses
// the segment pointing at it, producing T- and L-junctions at edges and
// corners.
type IntersectionType struct {
	Up, Down, Left, Right bool
}

// Intersection probes the four neighbors of a cell for the border sentinel.
func (g *Grid) Intersection(row, col int) IntersectionType {
	return IntersectionType{
		Up:    !g.isBorder(row-1, col),
		Down:  !g.isBorder(row+1, col),
		Left:  !g.isBorder(row, col-1),
		Right: !g.isBorder(row, col+1),
	}
}

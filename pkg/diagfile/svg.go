package diagfile

import (
	"fmt"
	"html"
	"strings"

	"github.com/gobandiag/goban-toolkit/pkg/goban"
)

// columnLabels is the coordinate alphabet for column labels. The letter I is
// skipped by goban convention.
const columnLabels = "ABCDEFGHJKLMNOPQRSTUVWXYZabcdefghjklmnopqrstuvwxyz23456789"

// Rendering is the output of one render call. Width and Height are nil when
// the diagram failed to parse, in which case SVG holds an error placeholder
// instead of a board.
type Rendering struct {
	SVG    string
	Width  *int
	Height *int
}

// svgDoc collects the output sections in named fields; they are concatenated
// in a fixed order (background, board body, coordinate labels) at the end.
type svgDoc struct {
	background strings.Builder
	body       strings.Builder
	coords     strings.Builder
}

// RenderSVG renders the diagram to an SVG document. Rendering is pure: the
// same diagram renders to byte-identical output every call.
func RenderSVG(d *goban.Diagram, style Style) Rendering {
	if !d.Valid() {
		return Rendering{SVG: errorSVG()}
	}

	geo := ComputeGeometry(d)
	g := d.Grid()
	doc := &svgDoc{}

	fmt.Fprintf(&doc.background, "<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" fill=%q/>\n",
		geo.Width, geo.Height, style.BoardColor)

	for row := g.StartRow; row <= g.EndRow; row++ {
		for col := g.StartCol; col <= g.EndCol; col++ {
			renderCell(doc, d, geo, style, row, col)
		}
	}
	if geo.Coordinates {
		renderCoordinates(doc, d, geo, style)
	}

	var sb strings.Builder
	h, _ := d.FontMetrics()
	fmt.Fprintf(&sb, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"+
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		geo.Width, geo.Height, geo.Width, geo.Height)
	fmt.Fprintf(&sb, "<style>\n"+
		"  .grid { stroke: %s; stroke-width: 1; }\n"+
		"  .label { font-family: monospace; font-size: %dpx; }\n"+
		"</style>\n", style.LineColor, h-2)
	sb.WriteString(doc.background.String())
	sb.WriteString(doc.body.String())
	sb.WriteString(doc.coords.String())
	sb.WriteString("</svg>\n")

	w, ht := geo.Width, geo.Height
	return Rendering{SVG: sb.String(), Width: &w, Height: &ht}
}

// renderCell classifies one grid cell and emits its drawing primitives. An
// anchored token gets its clickable overlay first, beneath the symbol,
// whatever the symbol is.
func renderCell(doc *svgDoc, d *goban.Diagram, geo Geometry, style Style, row, col int) {
	g := d.Grid()
	cell := g.CellAt(row, col)
	cx, cy := geo.CellCenter(g, row, col)
	fontH, fontW := d.FontMetrics()

	if url, ok := d.LinkFor(cell.Token); ok {
		fmt.Fprintf(&doc.body, "<a href=%q><rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=%q fill-opacity=\"0.3\"/></a>\n",
			url, cx-geo.Radius, cy-geo.Radius, geo.Diameter, geo.Diameter, style.LinkColor)
	}

	switch cell.Kind {
	case goban.CellBlack:
		svgStone(doc, geo, style, cx, cy, goban.Black)
	case goban.CellBlackCircle:
		svgStone(doc, geo, style, cx, cy, goban.Black)
		svgMarkCircle(doc, geo, style, cx, cy)
	case goban.CellBlackSquare:
		svgStone(doc, geo, style, cx, cy, goban.Black)
		svgMarkSquare(doc, geo, style, cx, cy)

	case goban.CellWhite:
		svgStone(doc, geo, style, cx, cy, goban.White)
	case goban.CellWhiteCircle:
		svgStone(doc, geo, style, cx, cy, goban.White)
		svgMarkCircle(doc, geo, style, cx, cy)
	case goban.CellWhiteSquare:
		svgStone(doc, geo, style, cx, cy, goban.White)
		svgMarkSquare(doc, geo, style, cx, cy)

	case goban.CellEmpty:
		svgIntersection(doc, g, geo, cx, cy, row, col)
	case goban.CellHoshi:
		svgIntersection(doc, g, geo, cx, cy, row, col)
		hr := geo.Radius / 6
		if hr < 2 {
			hr = 2
		}
		fmt.Fprintf(&doc.body, "<circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=%q/>\n",
			cx, cy, hr, style.LineColor)
	case goban.CellCircle:
		svgIntersection(doc, g, geo, cx, cy, row, col)
		svgMarkCircle(doc, geo, style, cx, cy)
	case goban.CellSquare:
		svgIntersection(doc, g, geo, cx, cy, row, col)
		svgMarkSquare(doc, geo, style, cx, cy)

	case goban.CellNumber:
		stone := goban.MoveColor(cell.Number, d.Header().FirstColor)
		svgStone(doc, geo, style, cx, cy, stone)
		label := goban.MoveLabel(cell.Number)
		tx := cx - fontW/2
		if len(label) > 1 {
			tx = cx - fontW
		}
		fmt.Fprintf(&doc.body, "<text x=\"%d\" y=\"%d\" class=\"label\" fill=%q>%s</text>\n",
			tx, cy+fontH/2-2, style.StoneColor(stone.Other()), label)

	case goban.CellLetter:
		svgIntersection(doc, g, geo, cx, cy, row, col)
		occlusion := style.BoardColor
		if _, ok := d.LinkFor(cell.Token); ok {
			// Linked letters get the link color behind them so the
			// anchor is visible on the board.
			occlusion = style.LinkColor
		}
		fmt.Fprintf(&doc.body, "<circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=%q/>\n",
			cx, cy, geo.Radius-2, occlusion)
		fmt.Fprintf(&doc.body, "<text x=\"%d\" y=\"%d\" class=\"label\" fill=%q>%c</text>\n",
			cx-fontW/2, cy+fontH/2-2, style.LineColor, cell.Letter)

	default:
		// Border, markup, unknown: nothing to draw.
	}
}

// svgStone draws a filled stone. White stones carry a contrasting outline.
func svgStone(doc *svgDoc, geo Geometry, style Style, cx, cy int, c goban.Color) {
	fmt.Fprintf(&doc.body, "<circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=%q stroke=%q/>\n",
		cx, cy, geo.Radius-1, style.StoneColor(c), style.BlackColor)
}

func svgMarkCircle(doc *svgDoc, geo Geometry, style Style, cx, cy int) {
	fmt.Fprintf(&doc.body, "<circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"none\" stroke=%q stroke-width=\"2\"/>\n",
		cx, cy, geo.Radius/2, style.MarkColor)
}

func svgMarkSquare(doc *svgDoc, geo Geometry, style Style, cx, cy int) {
	side := geo.Radius
	fmt.Fprintf(&doc.body, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"none\" stroke=%q stroke-width=\"2\"/>\n",
		cx-side/2, cy-side/2, side, side, style.MarkColor)
}

// svgIntersection draws the line cross of an empty intersection, dropping
// segments that point at a border cell.
func svgIntersection(doc *svgDoc, g *goban.Grid, geo Geometry, cx, cy, row, col int) {
	it := g.Intersection(row, col)
	r := geo.Radius
	if it.Up {
		fmt.Fprintf(&doc.body, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" class=\"grid\"/>\n", cx, cy-r, cx, cy)
	}
	if it.Down {
		fmt.Fprintf(&doc.body, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" class=\"grid\"/>\n", cx, cy, cx, cy+r)
	}
	if it.Left {
		fmt.Fprintf(&doc.body, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" class=\"grid\"/>\n", cx-r, cy, cx, cy)
	}
	if it.Right {
		fmt.Fprintf(&doc.body, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" class=\"grid\"/>\n", cx, cy, cx+r, cy)
	}
}

// renderCoordinates emits the row and column labels along the visible board
// edges. Only called when geometry kept coordinates enabled.
func renderCoordinates(doc *svgDoc, d *goban.Diagram, geo Geometry, style Style) {
	g := d.Grid()
	hdr := d.Header()
	fontH, fontW := d.FontMetrics()

	// Column labels left to right. Without a left border the visible
	// columns are the rightmost ones, so the start index shifts inward
	// using the board size.
	start := 0
	if !g.Left && g.Right {
		start = hdr.BoardSize - g.ColSpan()
		if start < 0 {
			start = 0
		}
	}
	x := geo.OffsetX + geo.Radius - fontW/2
	for i := 0; i < g.ColSpan(); i++ {
		idx := start + i
		if idx >= len(columnLabels) {
			break
		}
		fmt.Fprintf(&doc.coords, "<text x=\"%d\" y=\"%d\" class=\"label\" fill=%q>%c</text>\n",
			x, geo.OffsetY-4, style.LineColor, columnLabels[idx])
		x += 2 * geo.Radius
	}

	// Row labels count down top to bottom: from the full board size when
	// only a top border exists, from the visible row count when a bottom
	// border anchors row 1.
	label := g.RowSpan()
	if g.Top && !g.Bottom {
		label = hdr.BoardSize
	}
	y := geo.OffsetY + geo.Radius + fontH/2 - 2
	for i := 0; i < g.RowSpan(); i++ {
		fmt.Fprintf(&doc.coords, "<text x=\"2\" y=\"%d\" class=\"label\" fill=%q>%d</text>\n",
			y, style.LineColor, label)
		label--
		y += 2 * geo.Radius
	}
}

// errorSVG is the placeholder document for diagrams that failed to parse.
// The original malformed text is never echoed back.
func errorSVG() string {
	lines := []string{
		"Malformed goban diagram.",
		"The source could not be parsed.",
	}
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"240\" height=\"56\" viewBox=\"0 0 240 56\">\n" +
		"<rect x=\"0\" y=\"0\" width=\"240\" height=\"56\" fill=\"white\" stroke=\"red\"/>\n")
	y := 22
	for _, line := range lines {
		fmt.Fprintf(&sb, "<text x=\"10\" y=\"%d\" font-family=\"monospace\" font-size=\"12px\" fill=\"red\">%s</text>\n",
			y, html.EscapeString(line))
		y += 16
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

package diagfile

import (
	"github.com/gobandiag/goban-toolkit/pkg/goban"
)

// Geometry is the pixel layout derived from the grid bounds and font
// metrics. It is a pure function of the parsed diagram: computing it twice
// yields identical values.
type Geometry struct {
	Diameter int // cell diameter
	Radius   int
	Width    int // image width
	Height   int // image height
	OffsetX  int // left edge of the board area
	OffsetY  int // top edge of the board area

	// Coordinates is the effective coordinate-display flag: the header
	// request holds only when at least one horizontal and one vertical
	// border exist to anchor the labels.
	Coordinates bool
}

// ComputeGeometry derives the layout for a valid diagram.
func ComputeGeometry(d *goban.Diagram) Geometry {
	h, w := d.FontMetrics()
	g := d.Grid()
	diam := goban.CellDiameter(h, w)

	geo := Geometry{
		Diameter: diam,
		Radius:   diam / 2,
		Width:    diam*g.ColSpan() + 4,
		Height:   diam*g.RowSpan() + 4,
		OffsetX:  2,
		OffsetY:  2,
	}
	if d.Header().Coordinates && (g.Top || g.Bottom) && (g.Left || g.Right) {
		geo.Coordinates = true
		leftMargin := 2*w + 4
		topMargin := h + 2
		geo.OffsetX += leftMargin
		geo.Width += leftMargin
		geo.OffsetY += topMargin
		geo.Height += topMargin
	}
	return geo
}

// CellCenter returns the pixel center of a grid cell.
func (geo Geometry) CellCenter(g *goban.Grid, row, col int) (x, y int) {
	x = geo.OffsetX + geo.Diameter*(col-g.StartCol) + geo.Radius
	y = geo.OffsetY + geo.Diameter*(row-g.StartRow) + geo.Radius
	return x, y
}

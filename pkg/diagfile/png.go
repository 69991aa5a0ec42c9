// Native PNG rendering for goban diagrams.
// Mirrors the SVG renderer output using Go's image packages.

package diagfile

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gobandiag/goban-toolkit/pkg/goban"
)

// ErrInvalidDiagram is returned when a raster export is requested for a
// diagram that failed to parse.
var ErrInvalidDiagram = errors.New("diagfile: cannot render invalid diagram")

// rasterContext holds the target image and scaled drawing parameters.
type rasterContext struct {
	img       *image.RGBA
	scale     float64
	lineWidth float64
	face      font.Face
}

func newRasterContext(img *image.RGBA, scale, fontH int) *rasterContext {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // embedded font, cannot fail
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64((fontH - 2) * scale),
		DPI:     72,
		Hinting: font.HintingNone, // supersampling smooths instead
	})
	if err != nil {
		panic(err)
	}
	return &rasterContext{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale),
		face:      face,
	}
}

// RenderPNG renders the diagram to PNG. The board is drawn at 4x size and
// downsampled for smooth circles and text.
func RenderPNG(d *goban.Diagram, style Style, w io.Writer) error {
	if !d.Valid() {
		return ErrInvalidDiagram
	}
	const scale = 4

	fontH, fontW := d.FontMetrics()
	big := goban.New(d.Source(), fontH*scale, fontW*scale)
	bigGeo := ComputeGeometry(big)

	img := image.NewRGBA(image.Rect(0, 0, bigGeo.Width, bigGeo.Height))
	ctx := newRasterContext(img, scale, fontH)
	drawDiagram(ctx, big, bigGeo, style)

	geo := ComputeGeometry(d)
	final := image.NewRGBA(image.Rect(0, 0, geo.Width, geo.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), img, img.Bounds(), draw.Over, nil)

	return png.Encode(w, final)
}

func drawDiagram(ctx *rasterContext, d *goban.Diagram, geo Geometry, style Style) {
	board := parseHexColor(style.BoardColor)
	line := parseHexColor(style.LineColor)
	mark := parseHexColor(style.MarkColor)
	link := parseHexColor(style.LinkColor)
	black := parseHexColor(style.BlackColor)
	white := parseHexColor(style.WhiteColor)
	stone := func(c goban.Color) color.RGBA {
		if c == goban.White {
			return white
		}
		return black
	}

	fillRect(ctx.img, 0, 0, geo.Width, geo.Height, board)

	g := d.Grid()
	fontH, fontW := d.FontMetrics()
	for row := g.StartRow; row <= g.EndRow; row++ {
		for col := g.StartCol; col <= g.EndCol; col++ {
			cell := g.CellAt(row, col)
			cx, cy := geo.CellCenter(g, row, col)

			if _, ok := d.LinkFor(cell.Token); ok {
				blendRect(ctx.img, cx-geo.Radius, cy-geo.Radius, geo.Diameter, geo.Diameter, link, 0.3)
			}

			switch cell.Kind {
			case goban.CellBlack, goban.CellBlackCircle, goban.CellBlackSquare:
				drawStone(ctx, cx, cy, geo.Radius-1, black, black)
				if cell.Kind == goban.CellBlackCircle {
					strokeCircle(ctx, cx, cy, geo.Radius/2, mark)
				} else if cell.Kind == goban.CellBlackSquare {
					strokeSquare(ctx, cx, cy, geo.Radius, mark)
				}

			case goban.CellWhite, goban.CellWhiteCircle, goban.CellWhiteSquare:
				drawStone(ctx, cx, cy, geo.Radius-1, white, black)
				if cell.Kind == goban.CellWhiteCircle {
					strokeCircle(ctx, cx, cy, geo.Radius/2, mark)
				} else if cell.Kind == goban.CellWhiteSquare {
					strokeSquare(ctx, cx, cy, geo.Radius, mark)
				}

			case goban.CellEmpty, goban.CellHoshi, goban.CellCircle, goban.CellSquare:
				drawCross(ctx, g, geo, cx, cy, row, col, line)
				switch cell.Kind {
				case goban.CellHoshi:
					hr := geo.Radius / 6
					if hr < int(2*ctx.scale) {
						hr = int(2 * ctx.scale)
					}
					fillCircle(ctx.img, cx, cy, hr, line)
				case goban.CellCircle:
					strokeCircle(ctx, cx, cy, geo.Radius/2, mark)
				case goban.CellSquare:
					strokeSquare(ctx, cx, cy, geo.Radius, mark)
				}

			case goban.CellNumber:
				mc := goban.MoveColor(cell.Number, d.Header().FirstColor)
				drawStone(ctx, cx, cy, geo.Radius-1, stone(mc), black)
				label := goban.MoveLabel(cell.Number)
				tx := cx - fontW/2
				if len(label) > 1 {
					tx = cx - fontW
				}
				drawText(ctx, tx, cy+fontH/2-2, label, stone(mc.Other()))

			case goban.CellLetter:
				drawCross(ctx, g, geo, cx, cy, row, col, line)
				occlusion := board
				if _, ok := d.LinkFor(cell.Token); ok {
					occlusion = link
				}
				fillCircle(ctx.img, cx, cy, geo.Radius-2, occlusion)
				drawText(ctx, cx-fontW/2, cy+fontH/2-2, string(cell.Letter), line)
			}
		}
	}

	if geo.Coordinates {
		hdr := d.Header()
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
			drawText(ctx, x, geo.OffsetY-int(4*ctx.scale), string(columnLabels[idx]), line)
			x += 2 * geo.Radius
		}

		label := g.RowSpan()
		if g.Top && !g.Bottom {
			label = hdr.BoardSize
		}
		y := geo.OffsetY + geo.Radius + fontH/2 - 2
		for i := 0; i < g.RowSpan(); i++ {
			drawText(ctx, int(2*ctx.scale), y, strconv.Itoa(label), line)
			label--
			y += 2 * geo.Radius
		}
	}
}

func drawCross(ctx *rasterContext, g *goban.Grid, geo Geometry, cx, cy, row, col int, c color.RGBA) {
	it := g.Intersection(row, col)
	r := geo.Radius
	if it.Up {
		drawSegment(ctx, cx, cy-r, cx, cy, c)
	}
	if it.Down {
		drawSegment(ctx, cx, cy, cx, cy+r, c)
	}
	if it.Left {
		drawSegment(ctx, cx-r, cy, cx, cy, c)
	}
	if it.Right {
		drawSegment(ctx, cx, cy, cx+r, cy, c)
	}
}

func drawStone(ctx *rasterContext, cx, cy, r int, fill, stroke color.RGBA) {
	fillCircle(ctx.img, cx, cy, r, fill)
	strokeCircle(ctx, cx, cy, r, stroke)
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			img.Set(x+dx, y+dy, c)
		}
	}
}

// blendRect overlays a translucent rectangle, used for link regions.
func blendRect(img *image.RGBA, x, y, w, h int, c color.RGBA, alpha float64) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			bg := img.RGBAAt(x+dx, y+dy)
			img.Set(x+dx, y+dy, color.RGBA{
				R: uint8(float64(bg.R)*(1-alpha) + float64(c.R)*alpha),
				G: uint8(float64(bg.G)*(1-alpha) + float64(c.G)*alpha),
				B: uint8(float64(bg.B)*(1-alpha) + float64(c.B)*alpha),
				A: 255,
			})
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

func strokeCircle(ctx *rasterContext, cx, cy, r int, c color.RGBA) {
	thickness := ctx.lineWidth
	fr := float64(r)
	for angle := 0.0; angle < 2*math.Pi; angle += 0.005 {
		x := float64(cx) + fr*math.Cos(angle)
		y := float64(cy) + fr*math.Sin(angle)
		for t := -thickness / 2; t <= thickness/2; t += 0.5 {
			ctx.img.Set(int(x+math.Cos(angle)*t), int(y+math.Sin(angle)*t), c)
		}
	}
}

func strokeSquare(ctx *rasterContext, cx, cy, side int, c color.RGBA) {
	half := side / 2
	drawSegment(ctx, cx-half, cy-half, cx+half, cy-half, c)
	drawSegment(ctx, cx+half, cy-half, cx+half, cy+half, c)
	drawSegment(ctx, cx+half, cy+half, cx-half, cy+half, c)
	drawSegment(ctx, cx-half, cy+half, cx-half, cy-half, c)
}

// drawSegment draws a line with the context line thickness.
func drawSegment(ctx *rasterContext, x1, y1, x2, y2 int, c color.RGBA) {
	fx1, fy1 := float64(x1), float64(y1)
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		ctx.img.Set(x1, y1, c)
		return
	}
	perpX := -dy / dist
	perpY := dx / dist
	half := ctx.lineWidth / 2
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px := fx1 + dx*t
		py := fy1 + dy*t
		for off := -half; off <= half; off += 0.5 {
			ctx.img.Set(int(px+perpX*off), int(py+perpY*off), c)
		}
	}
}

// drawText draws text with its left edge at x and baseline at y, matching
// the SVG renderer's text placement.
func drawText(ctx *rasterContext, x, y int, text string, c color.RGBA) {
	dr := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	dr.DrawString(text)
}

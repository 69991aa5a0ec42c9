package goban

import (
	"errors"
	"html"
	"strings"
)

// ErrSGFNotImplemented is returned by the structured game-record export.
// The export is a known gap; an empty success would mask it.
var ErrSGFNotImplemented = errors.New("goban: sgf export not implemented")

// Diagram is the parse-then-render façade. Construction fully parses the
// source; rendering (pkg/diagfile) is a pure function of the parsed state,
// so one instance may be rendered repeatedly with identical results.
type Diagram struct {
	source       string
	fontH, fontW int

	header HeaderInfo
	links  map[string]string
	grid   *Grid
	valid  bool
}

// New parses the diagram source. fontH and fontW are the font cell height
// and width in pixels; together they fix the rendered cell size. A parse
// failure leaves the diagram permanently invalid, never partially parsed.
func New(source string, fontH, fontW int) *Diagram {
	d := &Diagram{
		source: source,
		fontH:  fontH,
		fontW:  fontW,
		links:  make(map[string]string),
	}
	lines := strings.Split(source, "\n")
	hdr, ok := parseHeader(lines[0])
	if !ok {
		return d
	}
	d.header = hdr

	body, links := scanLines(lines[1:])
	d.links = links

	grid, err := normalize(body)
	if err != nil {
		return d
	}

	// The rendered image must be at least one font cell in each axis.
	diam := CellDiameter(fontH, fontW)
	if diam*grid.ColSpan()+4 < fontW || diam*grid.RowSpan()+4 < fontH {
		return d
	}

	d.grid = grid
	d.valid = true
	return d
}

// Valid reports whether parsing succeeded. Invalid diagrams render as an
// error placeholder.
func (d *Diagram) Valid() bool { return d.valid }

// Source returns the raw input text.
func (d *Diagram) Source() string { return d.source }

// FontMetrics returns the font cell height and width supplied at
// construction.
func (d *Diagram) FontMetrics() (h, w int) { return d.fontH, d.fontW }

// Header returns the parsed control directives.
func (d *Diagram) Header() HeaderInfo { return d.header }

// Title returns the diagram title with markup characters escaped.
func (d *Diagram) Title() string { return html.EscapeString(d.header.Title) }

// Grid returns the normalized grid, or nil when the diagram is invalid.
func (d *Diagram) Grid() *Grid { return d.grid }

// Links returns a copy of the anchor-to-URL map.
func (d *Diagram) Links() map[string]string {
	out := make(map[string]string, len(d.links))
	for k, v := range d.links {
		out[k] = v
	}
	return out
}

// LinkFor returns the URL anchored on the given cell token, if any.
func (d *Diagram) LinkFor(token string) (string, bool) {
	url, ok := d.links[token]
	return url, ok
}

// SGF exports the diagram as a structured game record. Not implemented;
// always returns ErrSGFNotImplemented.
func (d *Diagram) SGF() (string, error) {
	return "", ErrSGFNotImplemented
}

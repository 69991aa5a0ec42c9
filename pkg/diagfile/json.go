package diagfile

import (
	"encoding/json"

	"github.com/gobandiag/goban-toolkit/pkg/goban"
)

// jsonDiagram is the JSON representation of a parsed diagram, intended for
// host integrations that embed the rendered markup themselves.
type jsonDiagram struct {
	Valid       bool              `json:"valid"`
	Title       string            `json:"title,omitempty"`
	FirstColor  string            `json:"first_color"`
	BoardSize   int               `json:"board_size"`
	Coordinates bool              `json:"coordinates"`
	Borders     jsonBorders       `json:"borders"`
	Links       map[string]string `json:"links,omitempty"`
	Rows        [][]string        `json:"rows,omitempty"`
	Width       *int              `json:"width"`
	Height      *int              `json:"height"`
}

type jsonBorders struct {
	Top    bool `json:"top"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`
}

// ToJSON converts a diagram to JSON. Invalid diagrams serialize with null
// dimensions and no rows, mirroring the render output contract.
func ToJSON(d *goban.Diagram, pretty bool) ([]byte, error) {
	hdr := d.Header()
	j := jsonDiagram{
		Valid:       d.Valid(),
		Title:       d.Title(),
		FirstColor:  hdr.FirstColor.String(),
		BoardSize:   hdr.BoardSize,
		Coordinates: hdr.Coordinates,
		Links:       d.Links(),
	}
	if d.Valid() {
		g := d.Grid()
		j.Borders = jsonBorders{Top: g.Top, Bottom: g.Bottom, Left: g.Left, Right: g.Right}
		for row := g.StartRow; row <= g.EndRow; row++ {
			tokens := make([]string, 0, g.ColSpan())
			for col := g.StartCol; col <= g.EndCol; col++ {
				tokens = append(tokens, g.CellAt(row, col).Token)
			}
			j.Rows = append(j.Rows, tokens)
		}
		geo := ComputeGeometry(d)
		j.Width = &geo.Width
		j.Height = &geo.Height
	}
	if pretty {
		return json.MarshalIndent(j, "", "  ")
	}
	return json.Marshal(j)
}

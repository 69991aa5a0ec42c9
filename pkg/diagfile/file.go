package diagfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobandiag/goban-toolkit/pkg/goban"
)

// ReadDiagramFile reads a diagram source file and parses it with the style's
// font metrics. A parse failure is not an error here: the returned diagram
// reports it through Valid and renders as the error placeholder.
func ReadDiagramFile(path string, style Style) (*goban.Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return goban.New(string(data), style.FontHeight, style.FontWidth), nil
}

// WriteRenderedFile renders the diagram into the format implied by the
// output path's extension (.svg, .png or .json).
func WriteRenderedFile(path string, d *goban.Diagram, style Style) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		r := RenderSVG(d, style)
		return os.WriteFile(path, []byte(r.SVG), 0644)
	case ".png":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return RenderPNG(d, style, f)
	case ".json":
		data, err := ToJSON(d, true)
		if err != nil {
			return err
		}
		return os.WriteFile(path, append(data, '\n'), 0644)
	default:
		return fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
}

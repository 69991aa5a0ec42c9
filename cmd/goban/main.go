// Command goban converts line-notation goban diagrams into SVG, PNG or JSON.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobandiag/goban-toolkit/pkg/diagfile"
)

const usage = `goban - goban diagram toolkit

Usage:
  goban <command> [options]

Commands:
  render     Render a diagram to SVG, PNG or JSON
  info       Show diagram information
  validate   Check that a diagram parses
  sgf        Export a structured game record (not implemented)

Examples:
  goban render joseki.txt
  goban render joseki.txt -o joseki.png
  goban render joseki.txt --style goban.toml
  goban info joseki.txt
  goban validate joseki.txt

Use "goban <command> -h" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "render":
		cmdRender(args)
	case "info":
		cmdInfo(args)
	case "validate":
		cmdValidate(args)
	case "sgf":
		cmdSGF(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

// loadStyleArg resolves the optional --style flag.
func loadStyleArg(path string) diagfile.Style {
	if path == "" {
		return diagfile.DefaultStyle()
	}
	style, err := diagfile.LoadStyle(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return style
}

func cmdRender(args []string) {
	if len(args) < 1 || args[0] == "-h" {
		fmt.Fprintln(os.Stderr, "Usage: goban render <input> [-o output] [--style file]")
		os.Exit(1)
	}

	input := args[0]
	var output, stylePath string
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "--style":
			if i+1 < len(args) {
				stylePath = args[i+1]
				i++
			}
		}
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}

	style := loadStyleArg(stylePath)
	d, err := diagfile.ReadDiagramFile(input, style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !d.Valid() {
		fmt.Fprintln(os.Stderr, "Warning: diagram did not parse; writing error placeholder")
	}
	if err := diagfile.WriteRenderedFile(output, d, style); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", output)
}

func cmdInfo(args []string) {
	if len(args) < 1 || args[0] == "-h" {
		fmt.Fprintln(os.Stderr, "Usage: goban info <input>")
		os.Exit(1)
	}

	style := diagfile.DefaultStyle()
	d, err := diagfile.ReadDiagramFile(args[0], style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !d.Valid() {
		fmt.Println("Status:      invalid (parse failure)")
		os.Exit(1)
	}

	hdr := d.Header()
	g := d.Grid()
	geo := diagfile.ComputeGeometry(d)

	fmt.Println("Status:      valid")
	if hdr.Title != "" {
		fmt.Printf("Title:       %s\n", hdr.Title)
	}
	fmt.Printf("First move:  %s\n", hdr.FirstColor)
	fmt.Printf("Board size:  %d\n", hdr.BoardSize)
	fmt.Printf("Visible:     %dx%d cells\n", g.ColSpan(), g.RowSpan())
	fmt.Printf("Borders:     top=%v bottom=%v left=%v right=%v\n", g.Top, g.Bottom, g.Left, g.Right)
	fmt.Printf("Coordinates: %v\n", geo.Coordinates)
	fmt.Printf("Image:       %dx%d px\n", geo.Width, geo.Height)

	links := d.Links()
	if len(links) > 0 {
		anchors := make([]string, 0, len(links))
		for a := range links {
			anchors = append(anchors, a)
		}
		sort.Strings(anchors)
		fmt.Println("Links:")
		for _, a := range anchors {
			fmt.Printf("  %s -> %s\n", a, links[a])
		}
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 || args[0] == "-h" {
		fmt.Fprintln(os.Stderr, "Usage: goban validate <input>")
		os.Exit(1)
	}

	d, err := diagfile.ReadDiagramFile(args[0], diagfile.DefaultStyle())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !d.Valid() {
		fmt.Printf("%s: invalid\n", args[0])
		os.Exit(1)
	}
	fmt.Printf("%s: valid\n", args[0])
}

func cmdSGF(args []string) {
	if len(args) < 1 || args[0] == "-h" {
		fmt.Fprintln(os.Stderr, "Usage: goban sgf <input>")
		os.Exit(1)
	}

	d, err := diagfile.ReadDiagramFile(args[0], diagfile.DefaultStyle())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	out, err := d.SGF()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

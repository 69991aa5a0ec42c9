// Command gobanview shows a goban diagram file in the terminal.
// Read-only: r reloads the file, q or Escape quits.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/gobandiag/goban-toolkit/pkg/diagfile"
	"github.com/gobandiag/goban-toolkit/pkg/goban"
)

// Styles
var (
	styleBoard  = tcell.StyleDefault.Background(tcell.NewRGBColor(220, 179, 92)).Foreground(tcell.ColorBlack)
	styleBlack  = tcell.StyleDefault.Background(tcell.NewRGBColor(220, 179, 92)).Foreground(tcell.ColorBlack).Bold(true)
	styleWhite  = tcell.StyleDefault.Background(tcell.NewRGBColor(220, 179, 92)).Foreground(tcell.ColorWhite).Bold(true)
	styleMark   = tcell.StyleDefault.Background(tcell.NewRGBColor(220, 179, 92)).Foreground(tcell.ColorRed)
	styleLink   = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleTitle  = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

type viewer struct {
	screen   tcell.Screen
	filename string
	diagram  *goban.Diagram
	status   string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: gobanview <diagram file>")
		os.Exit(1)
	}

	v := &viewer{filename: os.Args[1]}
	if err := v.load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", v.filename, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	v.screen = screen

	v.run()
	screen.Fini()
}

func (v *viewer) load() error {
	d, err := diagfile.ReadDiagramFile(v.filename, diagfile.DefaultStyle())
	if err != nil {
		return err
	}
	v.diagram = d
	if d.Valid() {
		v.status = fmt.Sprintf("%s  (q quit, r reload)", v.filename)
	} else {
		v.status = fmt.Sprintf("%s: parse failure  (q quit, r reload)", v.filename)
	}
	return nil
}

func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
				return
			case ev.Rune() == 'r':
				if err := v.load(); err != nil {
					v.status = fmt.Sprintf("reload failed: %v", err)
				}
			}
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	d := v.diagram
	if !d.Valid() {
		v.drawString(2, 1, "Malformed goban diagram.", styleError)
		v.drawString(2, 2, "The source could not be parsed.", styleError)
		v.drawStatusBar(w, h)
		v.screen.Show()
		return
	}

	y := 1
	if title := d.Header().Title; title != "" {
		v.drawString(2, y, title, styleTitle)
		y += 2
	}

	v.drawBoard(2, y)

	links := d.Links()
	if len(links) > 0 {
		ly := y + d.Grid().RowSpan() + 3
		anchors := make([]string, 0, len(links))
		for a := range links {
			anchors = append(anchors, a)
		}
		sort.Strings(anchors)
		for _, a := range anchors {
			v.drawString(2, ly, fmt.Sprintf("%s -> %s", a, links[a]), styleLink)
			ly++
		}
	}

	v.drawStatusBar(w, h)
	v.screen.Show()
}

// drawBoard paints the visible cell span, two terminal columns per board
// column, with a one-cell border frame when the diagram has borders.
func (v *viewer) drawBoard(x0, y0 int) {
	g := v.diagram.Grid()
	first := v.diagram.Header().FirstColor

	for row := g.StartRow; row <= g.EndRow; row++ {
		for col := g.StartCol; col <= g.EndCol; col++ {
			cell := g.CellAt(row, col)
			x := x0 + (col-g.StartCol)*2
			y := y0 + (row - g.StartRow)
			text, style := cellGlyph(cell, first)
			if _, ok := v.diagram.LinkFor(cell.Token); ok {
				style = styleLink
			}
			v.drawString(x, y, text, style)
		}
	}
}

// cellGlyph picks a two-column terminal representation for a cell.
func cellGlyph(cell goban.Cell, first goban.Color) (string, tcell.Style) {
	switch cell.Kind {
	case goban.CellBlack:
		return "● ", styleBlack
	case goban.CellBlackCircle, goban.CellBlackSquare:
		return "●" + cell.Token, styleMark
	case goban.CellWhite:
		return "○ ", styleWhite
	case goban.CellWhiteCircle, goban.CellWhiteSquare:
		return "○" + cell.Token, styleMark
	case goban.CellEmpty:
		return "┼─", styleBoard
	case goban.CellHoshi:
		return "╋─", styleBoard
	case goban.CellCircle, goban.CellSquare:
		return cell.Token + "─", styleMark
	case goban.CellNumber:
		label := goban.MoveLabel(cell.Number)
		if len(label) == 1 {
			label += " "
		}
		if len(label) > 2 {
			label = label[len(label)-2:]
		}
		if goban.MoveColor(cell.Number, first) == goban.White {
			return label, styleWhite
		}
		return label, styleBlack
	case goban.CellLetter:
		return string(cell.Letter) + " ", styleBoard
	default:
		return "  ", styleBoard
	}
}

func (v *viewer) drawStatusBar(w, h int) {
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	v.drawString(1, h-1, v.status, styleStatus)
}

func (v *viewer) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

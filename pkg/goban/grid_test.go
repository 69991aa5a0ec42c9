package goban

import (
	"errors"
	"testing"
)

func TestNormalizeEnclosedBoard(t *testing.T) {
	g, err := normalize(" +-+\n | . |\n +-+\n")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !g.Top || !g.Bottom || !g.Left || !g.Right {
		t.Errorf("all four borders expected, got top=%v bottom=%v left=%v right=%v",
			g.Top, g.Bottom, g.Left, g.Right)
	}
	if g.StartRow != 1 || g.EndRow != 1 || g.StartCol != 1 || g.EndCol != 1 {
		t.Errorf("expected 1x1 span at (1,1), got rows %d..%d cols %d..%d",
			g.StartRow, g.EndRow, g.StartCol, g.EndCol)
	}
	if g.RowSpan() != 1 || g.ColSpan() != 1 {
		t.Errorf("expected 1x1 span, got %dx%d", g.ColSpan(), g.RowSpan())
	}
	if got := g.CellAt(1, 1); got.Kind != CellEmpty {
		t.Errorf("center cell should be empty, got %v", got.Kind)
	}
}

func TestNormalizeCornerDiagram(t *testing.T) {
	g, err := normalize("+----\n| . . .\n| . , .\n")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !g.Top || !g.Left {
		t.Error("top and left borders expected")
	}
	if g.Bottom || g.Right {
		t.Error("bottom and right borders not expected")
	}
	if g.RowSpan() != 2 || g.ColSpan() != 3 {
		t.Errorf("expected 3x2 visible span, got %dx%d", g.ColSpan(), g.RowSpan())
	}
	if got := g.CellAt(2, 2); got.Kind != CellHoshi {
		t.Errorf("expected hoshi at (2,2), got %v", got.Kind)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	for _, body := range []string{"", " +-+\n +-+\n", "\n\n"} {
		if _, err := normalize(body); !errors.Is(err, ErrDegenerateGrid) {
			t.Errorf("normalize(%q) should fail with ErrDegenerateGrid, got %v", body, err)
		}
	}
}

func TestTokenizeNonCompact(t *testing.T) {
	toks := tokenize(" 12 . X ")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0] != "12" {
		t.Errorf("two-digit move must stay one token, got %q", toks[0])
	}
}

func TestTokenizeCompact(t *testing.T) {
	cases := map[string][]string{
		" . X O ":   {".", "X", "O"},   // spaces, no digit
		"3.X":       {"3", ".", "X"},   // digit, no interior space
		" 1 . { . ": {"1", ".", "{", "."}, // continuation marker forces compact
	}
	for line, want := range cases {
		got := tokenize(line)
		if len(got) != len(want) {
			t.Errorf("tokenize(%q) = %v, want %v", line, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("tokenize(%q)[%d] = %q, want %q", line, i, got[i], want[i])
			}
		}
	}
}

func TestNormalizeStripsNoise(t *testing.T) {
	g, err := normalize("\t . \r. .$\n")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if g.ColSpan() != 3 {
		t.Errorf("expected 3 cells after stripping noise, got %d", g.ColSpan())
	}
}

func TestNormalizeCollapsesBlankLines(t *testing.T) {
	g, err := normalize(" . . .\n\n\n . . .\n")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if g.RowSpan() != 2 {
		t.Errorf("blank line runs should collapse, got %d rows", g.RowSpan())
	}
}

func TestIntersectionSuppression(t *testing.T) {
	g, err := normalize("+----\n| . .\n| . .\n")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	// Corner cell: border above and to the left.
	it := g.Intersection(g.StartRow, g.StartCol)
	if it.Up {
		t.Error("segment toward top border should be suppressed")
	}
	if it.Left {
		t.Error("segment toward left border should be suppressed")
	}
	if !it.Down || !it.Right {
		t.Error("interior segments should be drawn")
	}
	// Interior-edge cell without adjacent borders keeps all segments.
	it = g.Intersection(g.EndRow, g.EndCol)
	if !it.Up || !it.Down || !it.Left || !it.Right {
		t.Errorf("cell away from borders should keep a full cross, got %+v", it)
	}
}

func TestBorderFlagsPartial(t *testing.T) {
	cases := []struct {
		body                     string
		top, bottom, left, right bool
	}{
		{" ---\n . . .\n", true, false, false, false},
		{" . . .\n ---\n", false, true, false, false},
		{"| . .\n| . .\n", false, false, true, false},
		{" . . |\n . . |\n", false, false, false, true},
	}
	for _, c := range cases {
		g, err := normalize(c.body)
		if err != nil {
			t.Errorf("normalize(%q) failed: %v", c.body, err)
			continue
		}
		if g.Top != c.top || g.Bottom != c.bottom || g.Left != c.left || g.Right != c.right {
			t.Errorf("normalize(%q): borders top=%v bottom=%v left=%v right=%v, want %v %v %v %v",
				c.body, g.Top, g.Bottom, g.Left, g.Right, c.top, c.bottom, c.left, c.right)
		}
	}
}

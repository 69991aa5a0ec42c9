package diagfile

import (
	"testing"

	"github.com/gobandiag/goban-toolkit/pkg/goban"
)

const enclosedOnePoint = "$$Bc\n$$ +-+\n$$ | . |\n$$ +-+"

func TestComputeGeometryEnclosed(t *testing.T) {
	d := goban.New(enclosedOnePoint, 16, 8)
	if !d.Valid() {
		t.Fatal("diagram should be valid")
	}
	geo := ComputeGeometry(d)

	// floor(sqrt(16^2+8^2)) = 17
	if geo.Diameter != 17 || geo.Radius != 8 {
		t.Errorf("diameter/radius = %d/%d, want 17/8", geo.Diameter, geo.Radius)
	}
	if !geo.Coordinates {
		t.Error("coordinates should stay enabled with both border axes present")
	}

	// 1x1 board: diameter*1+4 plus the coordinate margins.
	leftMargin := 2*8 + 4
	topMargin := 16 + 2
	if want := 17 + 4 + leftMargin; geo.Width != want {
		t.Errorf("width = %d, want %d", geo.Width, want)
	}
	if want := 17 + 4 + topMargin; geo.Height != want {
		t.Errorf("height = %d, want %d", geo.Height, want)
	}
	if geo.OffsetX != 2+leftMargin || geo.OffsetY != 2+topMargin {
		t.Errorf("offsets = (%d,%d), want (%d,%d)",
			geo.OffsetX, geo.OffsetY, 2+leftMargin, 2+topMargin)
	}
}

func TestCoordinatesForcedOffWithoutBorders(t *testing.T) {
	d := goban.New("$$Bc\n$$ . . .\n$$ . . .", 16, 8)
	if !d.Valid() {
		t.Fatal("diagram should be valid")
	}
	geo := ComputeGeometry(d)
	if geo.Coordinates {
		t.Error("coordinates must be forced off without border anchors")
	}
	if geo.Width != 17*3+4 || geo.Height != 17*2+4 {
		t.Errorf("size = %dx%d, want %dx%d", geo.Width, geo.Height, 17*3+4, 17*2+4)
	}
	if geo.OffsetX != 2 || geo.OffsetY != 2 {
		t.Errorf("offsets = (%d,%d), want (2,2)", geo.OffsetX, geo.OffsetY)
	}
}

func TestCoordinatesEnlargeImage(t *testing.T) {
	plain := goban.New("$$B\n$$ +-+\n$$ | . |\n$$ +-+", 16, 8)
	coord := goban.New(enclosedOnePoint, 16, 8)
	gp := ComputeGeometry(plain)
	gc := ComputeGeometry(coord)
	if gc.Width <= gp.Width || gc.Height <= gp.Height {
		t.Errorf("coordinate margins must enlarge the image: %dx%d vs %dx%d",
			gc.Width, gc.Height, gp.Width, gp.Height)
	}
}

func TestCellCenter(t *testing.T) {
	d := goban.New("$$B\n$$ . . .\n$$ . . .", 16, 8)
	geo := ComputeGeometry(d)
	g := d.Grid()
	x, y := geo.CellCenter(g, g.StartRow, g.StartCol)
	if x != geo.OffsetX+geo.Radius || y != geo.OffsetY+geo.Radius {
		t.Errorf("first cell center = (%d,%d), want (%d,%d)",
			x, y, geo.OffsetX+geo.Radius, geo.OffsetY+geo.Radius)
	}
	x2, _ := geo.CellCenter(g, g.StartRow, g.StartCol+1)
	if x2-x != geo.Diameter {
		t.Errorf("adjacent centers should differ by the diameter, got %d", x2-x)
	}
}

func TestGeometryPure(t *testing.T) {
	d := goban.New(enclosedOnePoint, 16, 8)
	if ComputeGeometry(d) != ComputeGeometry(d) {
		t.Error("geometry must be a pure function of the diagram")
	}
}

package goban

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		token string
		kind  CellKind
	}{
		{".", CellEmpty},
		{",", CellHoshi},
		{"C", CellCircle},
		{"S", CellSquare},
		{"*", CellBorder},
		{"X", CellBlack},
		{"B", CellBlackCircle},
		{"#", CellBlackSquare},
		{"O", CellWhite},
		{"W", CellWhiteCircle},
		{"@", CellWhiteSquare},
		{"7", CellNumber},
		{"0", CellNumber},
		{"12", CellNumber},
		{"a", CellLetter},
		{"z", CellLetter},
		{"Y", CellMarkup},
		{"Q", CellMarkup},
		{"Z", CellMarkup},
		{"P", CellMarkup},
		{"T", CellMarkup},
		{"M", CellMarkup},
		{"{", CellUnknown},
		{"A", CellUnknown},
		{"?", CellUnknown},
	}
	for _, c := range cases {
		if got := classify(c.token); got.Kind != c.kind {
			t.Errorf("classify(%q).Kind = %v, want %v", c.token, got.Kind, c.kind)
		}
	}
}

func TestClassifyNumberValue(t *testing.T) {
	if got := classify("42"); got.Number != 42 {
		t.Errorf("classify(\"42\").Number = %d, want 42", got.Number)
	}
	if got := classify("f"); got.Letter != 'f' {
		t.Errorf("classify(\"f\").Letter = %q, want 'f'", got.Letter)
	}
}

func TestMoveColor(t *testing.T) {
	if MoveColor(1, Black) != Black || MoveColor(2, Black) != White {
		t.Error("with black first, odd moves are black and even moves white")
	}
	if MoveColor(1, White) != White || MoveColor(2, White) != Black {
		t.Error("with white first, odd moves are white and even moves black")
	}
	// 0 stands for move 10 and stays an even move.
	if MoveColor(0, Black) != White {
		t.Error("0 should count as an even move")
	}
}

func TestMoveLabel(t *testing.T) {
	if got := MoveLabel(0); got != "10" {
		t.Errorf("MoveLabel(0) = %q, want \"10\"", got)
	}
	if got := MoveLabel(7); got != "7" {
		t.Errorf("MoveLabel(7) = %q, want \"7\"", got)
	}
}

func TestCellDiameter(t *testing.T) {
	// floor(sqrt(16^2 + 8^2)) = floor(17.88) = 17
	if got := CellDiameter(16, 8); got != 17 {
		t.Errorf("CellDiameter(16, 8) = %d, want 17", got)
	}
	// 3-4-5 triangle
	if got := CellDiameter(4, 3); got != 5 {
		t.Errorf("CellDiameter(4, 3) = %d, want 5", got)
	}
}

package core

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hitbox-arcade/internal/geom"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'Q')

	s.Resize(20, 10)
	if s.Get(2, 2) != 'Q' {
		t.Errorf("content lost on grow: got %q", s.Get(2, 2))
	}

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Errorf("size after shrink = %dx%d, expected 2x2", s.Width(), s.Height())
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "hello")

	if got := strings.TrimSpace(s.Row(1)); got != "hello" {
		t.Errorf("Row(1) = %q, expected hello", got)
	}
	if s.Get(3, 1) != 'h' {
		t.Errorf("text not centered: %q", s.Row(1))
	}

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 3 {
		t.Errorf("String() has %d lines, expected 3", len(lines))
	}
}

func TestScreenPlotterDrawsHitBox(t *testing.T) {
	s := NewScreen(10, 10)
	box, err := geom.NewRectHitBox(1, 1, 4, 2)
	if err != nil {
		t.Fatalf("NewRectHitBox() failed: %v", err)
	}

	box.Draw(s.Plotter('#', ColorCyan))

	for _, p := range [][2]int{{1, 1}, {5, 1}, {5, 3}, {1, 3}, {3, 1}} {
		cell := s.GetCell(p[0], p[1])
		if cell.Rune != '#' || cell.Color != ColorCyan {
			t.Errorf("cell %v = %+v, expected cyan #", p, cell)
		}
	}
	if s.Get(3, 2) != ' ' {
		t.Error("interior of the wireframe should stay empty")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.Fill('x')
	s.DrawBox(0, 0, 6, 4)

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

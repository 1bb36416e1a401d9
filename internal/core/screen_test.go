package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGetClips(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColor(5, 5, 'X', ColorRed)

	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.Set(p[0], p[1], 'A')
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("out of bounds Get(%d, %d) should return space", p[0], p[1])
		}
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRectColor(NewRect(0, 0, 4, 4), '#', ColorGreen)
	s.Clear()

	if c := s.GetCell(2, 2); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear cell = %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		text string
		row  string
	}{
		{"inside", 2, 1, "Hello", "  Hello   "},
		{"clipped right", 8, 1, "Hello", "        He"},
		{"clipped left", -2, 1, "Hello", "llo       "},
		{"multibyte", 0, 1, "██●", "██●       "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 3)
			s.DrawText(tc.x, tc.y, tc.text)
			if got := s.Row(tc.y); got != tc.row {
				t.Errorf("Row(%d) = %q, expected %q", tc.y, got, tc.row)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCenteredColor(2, "Hi", ColorYellow)

	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("centered text row = %q", s.Row(2))
	}
	if s.GetCell(9, 2).Color != ColorYellow {
		t.Error("centered text lost its color")
	}

	s.DrawTextCentered(3, "●●")
	if s.Get(9, 3) != '●' {
		t.Errorf("multibyte text should center by rune count, row = %q", s.Row(3))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			if got := s.Get(x, y) == '#'; got != inside {
				t.Errorf("(%d, %d) filled = %v, expected %v", x, y, got, inside)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 4))

	expected := strings.Join([]string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawHLine(0, 0, 5, '-')
	s.DrawVLine(2, 1, 4, '|')

	expected := "-----\n  |  \n  |  \n  |  \n  |  "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorCyan)
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Hello   " {
		t.Errorf("row 0 = %q", got)
	}

	s.Resize(15, 8)
	if got := s.Row(0); !strings.HasPrefix(got, "Hello") || len(got) != 15 {
		t.Errorf("row 0 after enlarge = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorCyan {
		t.Error("resize dropped cell colors")
	}
	if got := s.Row(5); strings.TrimSpace(got) != "" {
		t.Errorf("row 5 should have been cut by the shrink, got %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q", got)
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 6)
	for i, row := range strings.Split(s.String(), "\n") {
		if row != want {
			t.Errorf("row %d = %q, want blank", i, row)
		}
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(5, 2)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 5, 0},
		{"above", 0, -1},
		{"below", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetCell(tt.x, tt.y, '#', ColorRed)
			if c := s.GetCell(tt.x, tt.y); c != blank {
				t.Errorf("GetCell(%d, %d) = %+v, want blank", tt.x, tt.y, c)
			}
		})
	}

	s.DrawText(3, 1, "fish")
	if got := strings.Split(s.String(), "\n")[1]; got != "   fi" {
		t.Errorf("clipped row = %q, want %q", got, "   fi")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetCell(1, 1, 'F', ColorYellow)
	s.DrawTextColor(3, 1, "ok", ColorGreen)
	s.DrawText(6, 1, "x")

	tests := []struct {
		x    int
		want Cell
	}{
		{1, Cell{'F', ColorYellow}},
		{4, Cell{'k', ColorGreen}},
		{6, Cell{'x', ColorDefault}},
		{9, blank},
	}
	for _, tt := range tests {
		if got := s.GetCell(tt.x, 1); got != tt.want {
			t.Errorf("GetCell(%d, 1) = %+v, want %+v", tt.x, got, tt.want)
		}
	}

	s.Clear()
	if got := s.GetCell(1, 1); got != blank {
		t.Errorf("after Clear GetCell(1, 1) = %+v", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if got := s.String(); got != "    abc    " {
		t.Errorf("centered = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorCyan)

	want := "┌───┐ \n│   │ \n└───┘ \n      "
	if got := s.String(); got != want {
		t.Errorf("box =\n%s\nwant\n%s", got, want)
	}
	for _, p := range [][2]int{{0, 0}, {2, 0}, {0, 1}, {4, 2}} {
		if c := s.GetCell(p[0], p[1]); c.Color != ColorCyan {
			t.Errorf("cell %v color = %v, want cyan", p, c.Color)
		}
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(8, 3)
	s.DrawTextColor(0, 0, "water", ColorBlue)
	s.DrawText(0, 2, "floor")

	s.Resize(3, 2)
	if got := s.String(); got != "wat\n   " {
		t.Errorf("after shrink = %q", got)
	}

	s.Resize(6, 3)
	if got := s.String(); got != "wat   \n      \n      " {
		t.Errorf("after grow = %q", got)
	}
	if c := s.GetCell(0, 0); c.Color != ColorBlue {
		t.Errorf("color lost on resize: %+v", c)
	}
}

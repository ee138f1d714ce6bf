package core

import "fmt"

// Field is the occupancy grid of a room.
// Each in-bounds cell holds at most one model. Cells below the last row are
// floor; cells beyond the other edges are open water.
type Field struct {
	w, h  int
	cells []*Model
}

// NewField creates an empty field of the given size.
func NewField(w, h int) *Field {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Field{
		w:     w,
		h:     h,
		cells: make([]*Model, w*h),
	}
}

// W returns the field width in cells.
func (f *Field) W() int {
	return f.w
}

// H returns the field height in cells.
func (f *Field) H() int {
	return f.h
}

// InBounds returns true if the coordinate lies inside the field.
func (f *Field) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < f.w && c.Y >= 0 && c.Y < f.h
}

// IsFloor returns true if the coordinate lies below the last row.
func (f *Field) IsFloor(c Coord) bool {
	return c.Y >= f.h
}

func (f *Field) index(c Coord) int {
	return c.Y*f.w + c.X
}

// Model returns the model occupying the cell, or nil when the cell is empty
// or outside the field.
func (f *Field) Model(c Coord) *Model {
	if !f.InBounds(c) {
		return nil
	}
	return f.cells[f.index(c)]
}

// Occupy places a model into the cell.
// Fails when the cell is outside the field or held by a different model.
func (f *Field) Occupy(c Coord, m *Model) error {
	if !f.InBounds(c) {
		return fmt.Errorf("field: occupy %v: %w", c, ErrOutOfField)
	}
	i := f.index(c)
	if other := f.cells[i]; other != nil && other != m {
		return fmt.Errorf("field: occupy %v by model %d: held by model %d: %w",
			c, m.Index(), other.Index(), ErrCellTaken)
	}
	f.cells[i] = m
	return nil
}

// Release clears the cell. Out-of-bounds coordinates are ignored.
func (f *Field) Release(c Coord) {
	if !f.InBounds(c) {
		return
	}
	f.cells[f.index(c)] = nil
}

// Occupied returns the number of occupied cells.
func (f *Field) Occupied() int {
	n := 0
	for _, m := range f.cells {
		if m != nil {
			n++
		}
	}
	return n
}

// clear empties every cell.
func (f *Field) clear() {
	for i := range f.cells {
		f.cells[i] = nil
	}
}

//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"log"

	"github.com/timburks/ledit/types"
)

// A Viewport is a fixed-size window onto a Buffer.
// It owns the cursor and the scroll offsets and keeps the cursor visible.
// The cursor is stored in buffer coordinates; the screen position is
// derived from it with BufferToScreen.
type Viewport struct {
	size     types.Size  // rows and columns available for text
	position types.Point // cursor position in the buffer; Row is the active line
	offset   types.Size  // buffer row and column shown in the top-left cell
}

func NewViewport(size types.Size) *Viewport {
	return &Viewport{size: size}
}

func (v *Viewport) GetSize() types.Size {
	return v.size
}

// SetSize changes the text area, e.g. after a terminal resize.
func (v *Viewport) SetSize(size types.Size, b *Buffer) {
	if size != v.size {
		log.Printf("viewport resized to %dx%d", size.Cols, size.Rows)
	}
	v.size = size
	v.Reconcile(b)
}

func (v *Viewport) GetOffset() types.Size {
	return v.offset
}

func (v *Viewport) GetActiveLine() int {
	return v.position.Row
}

func (v *Viewport) GetPosition() types.Point {
	return v.position
}

// GetCursor returns the cursor in screen coordinates.
func (v *Viewport) GetCursor() types.Point {
	return v.BufferToScreen(v.position)
}

// ScreenToBuffer converts a viewport-relative point to a buffer position.
func (v *Viewport) ScreenToBuffer(p types.Point) types.Point {
	return types.Point{
		Row: p.Row + v.offset.Rows,
		Col: p.Col + v.offset.Cols,
	}
}

// BufferToScreen converts a buffer position to a viewport-relative point.
func (v *Viewport) BufferToScreen(p types.Point) types.Point {
	return types.Point{
		Row: p.Row - v.offset.Rows,
		Col: p.Col - v.offset.Cols,
	}
}

// Reset moves the cursor and both offsets back to the origin.
func (v *Viewport) Reset() {
	v.position = types.Point{}
	v.offset = types.Size{}
}

// SetPosition moves the cursor to a buffer position, clamped to the buffer.
func (v *Viewport) SetPosition(b *Buffer, p types.Point) {
	v.position = p
	v.Reconcile(b)
}

// Reconcile re-validates the cursor and offsets after the buffer changed.
// Applying it twice has the same effect as applying it once.
func (v *Viewport) Reconcile(b *Buffer) {
	v.keepCursorInBuffer(b)
	v.adjustDisplayOffsetForScrolling(b)
}

func (v *Viewport) MoveVertical(b *Buffer, delta int) {
	if b.GetRowCount() == 0 {
		v.Reconcile(b)
		return
	}
	v.position.Row = clipToRange(v.position.Row+delta, 0, b.GetRowCount()-1)
	v.position.Col = min(v.position.Col, b.GetRowLength(v.position.Row))
	v.adjustDisplayOffsetForScrolling(b)
}

// MoveHalfPage scrolls a page of text rows in direction (types.Up or types.Down).
// The cursor keeps its row within the viewport.
func (v *Viewport) MoveHalfPage(b *Buffer, direction int) {
	rows := v.textRows()
	within := v.position.Row - v.offset.Rows
	last := max(0, b.GetRowCount()-rows)
	v.offset.Rows = clipToRange(v.offset.Rows+direction*rows, 0, last)
	v.position.Row = v.offset.Rows + within
	v.Reconcile(b)
}

// MoveHorizontal moves the cursor by delta characters, wrapping to the
// neighboring line at either end of the current one.
func (v *Viewport) MoveHorizontal(b *Buffer, delta int) {
	if b.GetRowCount() == 0 {
		v.Reconcile(b)
		return
	}
	for ; delta > 0; delta-- {
		v.moveCursorForward(b)
	}
	for ; delta < 0; delta++ {
		v.moveCursorBackward(b)
	}
	v.adjustDisplayOffsetForScrolling(b)
}

// The cursor may rest one past the last character so that text can be appended.
func (v *Viewport) moveCursorForward(b *Buffer) {
	if v.position.Col < b.GetRowLength(v.position.Row) {
		v.position.Col++
	} else if v.position.Row+1 < b.GetRowCount() {
		v.position.Row++
		v.position.Col = 0
	}
}

func (v *Viewport) moveCursorBackward(b *Buffer) {
	if v.position.Col > 0 {
		v.position.Col--
	} else if v.position.Row > 0 {
		v.position.Row--
		v.position.Col = b.GetRowLength(v.position.Row)
	}
}

func (v *Viewport) keepCursorInBuffer(b *Buffer) {
	if b.GetRowCount() == 0 {
		v.position = types.Point{}
		return
	}
	v.position.Row = clipToRange(v.position.Row, 0, b.GetRowCount()-1)
	v.position.Col = clipToRange(v.position.Col, 0, b.GetRowLength(v.position.Row))
}

// Recompute the display offset to keep the cursor onscreen.
func (v *Viewport) adjustDisplayOffsetForScrolling(b *Buffer) {
	rows := v.textRows()
	if v.position.Row < v.offset.Rows {
		// scroll up
		v.offset.Rows = v.position.Row
	}
	if v.position.Row-v.offset.Rows >= rows {
		// scroll down
		v.offset.Rows = v.position.Row - rows + 1
	}
	// never show rows past the end of the buffer
	if last := max(0, b.GetRowCount()-rows); v.offset.Rows > last {
		v.offset.Rows = last
	}
	if v.offset.Rows < 0 {
		v.offset.Rows = 0
	}

	cols := v.textCols()
	if v.position.Col < v.offset.Cols {
		// scroll left
		v.offset.Cols = v.position.Col
	}
	if v.position.Col-v.offset.Cols >= cols {
		// scroll right
		v.offset.Cols = v.position.Col - cols + 1
	}
	if v.offset.Cols < 0 {
		v.offset.Cols = 0
	}
}

// A viewport always has room for at least one cell.
func (v *Viewport) textRows() int {
	return max(1, v.size.Rows)
}

func (v *Viewport) textCols() int {
	return max(1, v.size.Cols)
}

// Validate checks the cursor and offsets against b.
// It returns a *BoundsViolation describing the first broken invariant.
func (v *Viewport) Validate(b *Buffer) error {
	rows := v.textRows()
	cols := v.textCols()
	count := b.GetRowCount()
	switch {
	case v.offset.Rows < 0:
		return &BoundsViolation{What: "vertical offset", Value: v.offset.Rows, Limit: 0}
	case v.offset.Cols < 0:
		return &BoundsViolation{What: "horizontal offset", Value: v.offset.Cols, Limit: 0}
	case count == 0 && v.position != (types.Point{}):
		return &BoundsViolation{What: "cursor row in empty buffer", Value: v.position.Row, Limit: 0}
	case count == 0:
		return nil
	case v.position.Row < 0 || v.position.Row >= count:
		return &BoundsViolation{What: "active line", Value: v.position.Row, Limit: count - 1}
	case v.position.Row < v.offset.Rows:
		return &BoundsViolation{What: "active line above viewport", Value: v.position.Row, Limit: v.offset.Rows}
	case v.position.Row >= v.offset.Rows+rows:
		return &BoundsViolation{What: "active line below viewport", Value: v.position.Row, Limit: v.offset.Rows + rows - 1}
	case v.offset.Rows > max(0, count-rows):
		return &BoundsViolation{What: "vertical offset past end of buffer", Value: v.offset.Rows, Limit: max(0, count-rows)}
	case v.position.Col < 0 || v.position.Col > b.GetRowLength(v.position.Row):
		return &BoundsViolation{What: "cursor column", Value: v.position.Col, Limit: b.GetRowLength(v.position.Row)}
	case v.position.Col < v.offset.Cols || v.position.Col-v.offset.Cols >= cols:
		return &BoundsViolation{What: "screen column", Value: v.position.Col - v.offset.Cols, Limit: cols - 1}
	}
	return nil
}

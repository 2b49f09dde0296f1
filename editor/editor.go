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

// The Editor applies commands to a Buffer and keeps its Viewport consistent.
type Editor struct {
	buffer   *Buffer   // text being edited
	viewport *Viewport // visible part of the buffer and the cursor
	fileName string    // where Save writes the buffer
	running  bool      // false after Save or Quit
}

func NewEditor() *Editor {
	e := &Editor{}
	e.buffer = NewBuffer()
	e.viewport = NewViewport(types.Size{})
	e.running = true
	return e
}

func (e *Editor) GetBuffer() *Buffer {
	return e.buffer
}

func (e *Editor) GetViewport() *Viewport {
	return e.viewport
}

func (e *Editor) GetFileName() string {
	return e.fileName
}

func (e *Editor) SetFileName(name string) {
	e.fileName = name
}

func (e *Editor) IsRunning() bool {
	return e.running
}

// Open replaces the buffer contents and returns the cursor to the origin.
func (e *Editor) Open(lines []string) {
	e.buffer.Open(lines)
	e.viewport.Reset()
	e.viewport.Reconcile(e.buffer)
}

func (e *Editor) ReadFile(path string) error {
	lines, err := ReadLines(path)
	if err != nil {
		return err
	}
	e.Open(lines)
	e.fileName = path
	log.Printf("read %d lines from %s", len(lines), path)
	return nil
}

func (e *Editor) WriteFile(path string) error {
	lines := e.buffer.Lines()
	if err := WriteLines(path, lines); err != nil {
		return err
	}
	log.Printf("wrote %d lines to %s", len(lines), path)
	return nil
}

func (e *Editor) SetSize(size types.Size) {
	e.viewport.SetSize(size, e.buffer)
}

// Perform applies one command. Only Save can fail.
func (e *Editor) Perform(cmd types.Command) error {
	b := e.buffer
	v := e.viewport
	switch cmd.Kind {
	case types.CommandMoveUp:
		v.MoveVertical(b, -1)
	case types.CommandMoveDown:
		v.MoveVertical(b, 1)
	case types.CommandMoveLeft:
		v.MoveHorizontal(b, -1)
	case types.CommandMoveRight:
		v.MoveHorizontal(b, 1)
	case types.CommandHalfPageUp:
		v.MoveHalfPage(b, types.Up)
	case types.CommandHalfPageDown:
		v.MoveHalfPage(b, types.Down)
	case types.CommandInsertChar:
		e.InsertChar(cmd.Ch)
	case types.CommandDeleteBackward:
		e.DeleteBackward()
	case types.CommandSplitLine:
		e.SplitLine()
	case types.CommandSave:
		if err := e.WriteFile(e.fileName); err != nil {
			return err
		}
		e.running = false
	case types.CommandQuit:
		e.running = false
	}
	v.Reconcile(b)
	if debugAssertions {
		if err := v.Validate(b); err != nil {
			panic(err)
		}
	}
	return nil
}

// These primitives edit the buffer at the cursor.

func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.SplitLine()
		return
	}
	// an empty buffer gets its first row on the first keystroke
	if e.buffer.GetRowCount() == 0 {
		e.buffer.AppendBlankRow()
	}
	p := e.viewport.GetPosition()
	e.buffer.InsertCharacter(p.Row, p.Col, c)
	e.viewport.SetPosition(e.buffer, types.Point{Row: p.Row, Col: p.Col + 1})
}

// DeleteBackward deletes the character before the cursor.
// At the start of a line it only removes the line if the line is empty;
// it never joins two lines with text.
func (e *Editor) DeleteBackward() {
	b := e.buffer
	if b.GetRowCount() == 0 {
		return
	}
	p := e.viewport.GetPosition()
	if p.Col > 0 {
		_, collapsed := b.DeleteCharacter(p.Row, p.Col-1)
		if collapsed {
			e.moveToEndOfRowAbove(p.Row)
		} else {
			e.viewport.SetPosition(b, types.Point{Row: p.Row, Col: p.Col - 1})
		}
		return
	}
	if b.GetRowLength(p.Row) == 0 && b.GetRowCount() > 1 {
		if p.Row > 0 {
			b.JoinRows(p.Row - 1)
		} else {
			b.DeleteRow(p.Row)
		}
		e.moveToEndOfRowAbove(p.Row)
	}
}

// After row has been removed, put the cursor where the row used to end.
func (e *Editor) moveToEndOfRowAbove(row int) {
	if row > 0 {
		e.viewport.SetPosition(e.buffer, types.Point{Row: row - 1, Col: e.buffer.GetRowLength(row - 1)})
	} else {
		e.viewport.SetPosition(e.buffer, types.Point{})
	}
}

func (e *Editor) SplitLine() {
	if e.buffer.GetRowCount() == 0 {
		e.buffer.AppendBlankRow()
	}
	p := e.viewport.GetPosition()
	e.buffer.SplitRow(p.Row, p.Col)
	e.viewport.SetPosition(e.buffer, types.Point{Row: p.Row + 1, Col: 0})
}

// View describes the visible part of the buffer for a renderer.
func (e *Editor) View() types.View {
	v := e.viewport
	offset := v.GetOffset()
	count := e.buffer.GetRowCount()
	cursor := v.GetCursor()
	lines := make([]string, 0)
	for i := offset.Rows; i < offset.Rows+v.textRows() && i < count; i++ {
		lines = append(lines, e.buffer.GetRowText(i))
	}
	return types.View{
		Lines:     lines,
		Cursor:    cursor,
		Position:  v.ScreenToBuffer(cursor),
		Offset:    offset,
		Line:      v.GetActiveLine(),
		LineCount: count,
		Size:      v.GetSize(),
		FileName:  e.fileName,
	}
}

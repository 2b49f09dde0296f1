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
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/timburks/ledit/types"
)

var splash = []string{
	"ledit",
	"a small line editor",
	"",
	"type to begin",
	"^S save and quit   ^Q quit",
}

// RenderView draws a frame: the visible text, the info bar, the message bar,
// and the cursor. size is the size of the whole screen.
// Text rows hold one rune per cell, the same unit the viewport scrolls by.
func RenderView(d types.Display, v types.View, message string, size types.Size) {
	rows := min(v.Size.Rows, size.Rows-types.ReservedRows)
	for i := 0; i < rows; i++ {
		if i < len(v.Lines) {
			renderText(d, i, visibleText(v.Lines[i], v.Offset.Cols), size.Cols)
		} else {
			d.SetCell(0, i, '~', types.ColorBlue)
		}
	}
	if v.LineCount == 0 {
		renderSplash(d, rows, size.Cols)
	}

	// the info bar and message bar occupy the last two rows of the screen
	infoRow := size.Rows - 2
	if infoRow >= 0 {
		x := 0
		for _, ch := range computeInfoBarText(v, size) {
			d.SetCellReversed(x, infoRow, ch, types.ColorBlack)
			x += max(1, runewidth.RuneWidth(ch))
		}
	}
	if messageRow := size.Rows - 1; messageRow >= 0 {
		renderText(d, messageRow, message, size.Cols)
	}

	cursor := v.Cursor
	cursor.Col = clipToRange(cursor.Col, 0, size.Cols-1)
	d.SetCursor(cursor)
}

// draw at most width runes of text on row i
func renderText(d types.Display, i int, text string, width int) {
	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		if ch == '\t' {
			ch = ' '
		}
		d.SetCell(x, i, ch, types.ColorWhite)
		x++
	}
}

func renderSplash(d types.Display, rows, width int) {
	top := rows/3 - len(splash)/3
	if top < 0 {
		top = 0
	}
	for j, line := range splash {
		row := top + j
		if row >= rows {
			break
		}
		pad := (width - runewidth.StringWidth(line)) / 2
		if pad < 1 {
			pad = 1
		}
		x := pad
		for _, ch := range line {
			w := max(1, runewidth.RuneWidth(ch))
			if x+w > width {
				break
			}
			d.SetCell(x, row, ch, types.ColorCyan)
			x += w
		}
	}
}

// visibleText returns the part of line starting at rune offset cols.
func visibleText(line string, cols int) string {
	text := []rune(line)
	if cols >= len(text) {
		return ""
	}
	if cols < 0 {
		cols = 0
	}
	return string(text[cols:])
}

func clipToRange(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Compute the text to display on the info bar.
func computeInfoBarText(v types.View, size types.Size) string {
	name := v.FileName
	if name == "" {
		name = "[No Name]"
	}
	text := " " + name + " "
	finalText := fmt.Sprintf(" size(%d,%d) | scroll_offset(%d,%d) | %d lines | cursor %d:%d ",
		size.Cols, size.Rows,
		v.Offset.Cols, v.Offset.Rows,
		v.LineCount,
		v.Position.Row+1, v.Position.Col+1)
	length := size.Cols
	if runewidth.StringWidth(text)+runewidth.StringWidth(finalText) > length {
		return runewidth.Truncate(finalText, length, "")
	}
	for runewidth.StringWidth(text) < length-runewidth.StringWidth(finalText) {
		text = text + " "
	}
	return text + finalText
}

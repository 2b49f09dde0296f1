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

// A Buffer holds the lines of a document.
// Row indices that are out of range are ignored by every mutation.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

// Open replaces the contents of the buffer with lines.
func (b *Buffer) Open(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.GetString()
	}
	return lines
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRowText(i int) string {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].GetString()
	}
	return ""
}

func (b *Buffer) TextAfter(row, col int) string {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

func (b *Buffer) AppendBlankRow() {
	b.rows = append(b.rows, NewRow(""))
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if row >= 0 && row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

// DeleteCharacter removes the character at col and returns it.
// A row left empty is removed unless it is the only row; collapsed reports that.
func (b *Buffer) DeleteCharacter(row, col int) (c rune, collapsed bool) {
	if row < 0 || row >= len(b.rows) {
		return rune(0), false
	}
	if col < 0 || col >= b.rows[row].Length() {
		return rune(0), false
	}
	c = b.rows[row].DeleteChar(col)
	if b.rows[row].Length() == 0 && len(b.rows) > 1 {
		b.DeleteRow(row)
		collapsed = true
	}
	return c, collapsed
}

func (b *Buffer) DeleteRow(row int) {
	if row >= 0 && row < len(b.rows) {
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	}
}

// SplitRow breaks row at col; the text after col becomes a new row below it.
func (b *Buffer) SplitRow(row, col int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	newRow := b.rows[row].Split(col)
	i := row + 1
	// add a dummy row at the end of the rows slice
	b.rows = append(b.rows, nil)
	// move rows to make room for the one we are adding
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = newRow
}

// JoinRows appends the row after row to row and removes it.
func (b *Buffer) JoinRows(row int) {
	if row < 0 || row+1 >= len(b.rows) {
		return
	}
	b.rows[row].Join(b.rows[row+1])
	b.DeleteRow(row + 1)
}

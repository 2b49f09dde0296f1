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

// A Row is one line of text, addressed by rune index.
type Row struct {
	text []rune
}

func NewRow(text string) *Row {
	return &Row{text: []rune(text)}
}

func (r *Row) GetString() string {
	return string(r.text)
}

func (r *Row) Length() int {
	return len(r.text)
}

// insert c before col; col is clipped to the row
func (r *Row) InsertChar(col int, c rune) {
	col = clipToRange(col, 0, len(r.text))
	line := make([]rune, 0, len(r.text)+1)
	line = append(line, r.text[0:col]...)
	line = append(line, c)
	line = append(line, r.text[col:]...)
	r.text = line
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if col < 0 || col >= len(r.text) {
		return rune(0)
	}
	c := r.text[col]
	line := make([]rune, 0, len(r.text)-1)
	line = append(line, r.text[0:col]...)
	line = append(line, r.text[col+1:]...)
	r.text = line
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	col = clipToRange(col, 0, len(r.text))
	after := string(r.text[col:])
	r.text = r.text[0:col:col]
	return NewRow(after)
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	line := make([]rune, 0, len(r.text)+len(other.text))
	line = append(line, r.text...)
	line = append(line, other.text...)
	r.text = line
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col >= 0 && col < len(r.text) {
		return string(r.text[col:])
	}
	return ""
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

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferWithLines(lines ...string) *Buffer {
	b := NewBuffer()
	b.Open(lines)
	return b
}

func TestBufferOpen(t *testing.T) {
	b := bufferWithLines("one", "two")
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, []string{"one", "two"}, b.Lines())

	b.Open(nil)
	assert.Equal(t, 0, b.GetRowCount())
	assert.Equal(t, []string{}, b.Lines())
}

func TestBufferOutOfRangeAccess(t *testing.T) {
	b := bufferWithLines("abc")
	assert.Equal(t, 0, b.GetRowLength(1))
	assert.Equal(t, 0, b.GetRowLength(-1))
	assert.Equal(t, "", b.GetRowText(5))
	assert.Equal(t, "", b.TextAfter(5, 0))

	b.InsertCharacter(1, 0, 'x')
	b.InsertCharacter(-1, 0, 'x')
	b.DeleteRow(3)
	b.SplitRow(2, 0)
	b.JoinRows(0)
	c, collapsed := b.DeleteCharacter(4, 0)
	assert.Equal(t, rune(0), c)
	assert.False(t, collapsed)
	c, collapsed = b.DeleteCharacter(0, 3)
	assert.Equal(t, rune(0), c)
	assert.False(t, collapsed)
	assert.Equal(t, []string{"abc"}, b.Lines())
}

func TestBufferInsertCharacter(t *testing.T) {
	b := bufferWithLines("abc", "日本")
	b.InsertCharacter(0, 3, 'd')
	b.InsertCharacter(1, 1, 'の')
	assert.Equal(t, []string{"abcd", "日の本"}, b.Lines())
	assert.Equal(t, 3, b.GetRowLength(1))
}

func TestBufferDeleteCharacterCollapsesEmptyRow(t *testing.T) {
	b := bufferWithLines("a", "b")
	c, collapsed := b.DeleteCharacter(1, 0)
	assert.Equal(t, 'b', c)
	assert.True(t, collapsed)
	assert.Equal(t, []string{"a"}, b.Lines())
}

func TestBufferDeleteCharacterKeepsSoleRow(t *testing.T) {
	b := bufferWithLines("x")
	c, collapsed := b.DeleteCharacter(0, 0)
	assert.Equal(t, 'x', c)
	assert.False(t, collapsed)
	assert.Equal(t, []string{""}, b.Lines())
}

func TestBufferSplitRow(t *testing.T) {
	b := bufferWithLines("ab", "cd")
	b.SplitRow(0, 2)
	assert.Equal(t, []string{"ab", "", "cd"}, b.Lines())
	b.SplitRow(2, 0)
	assert.Equal(t, []string{"ab", "", "", "cd"}, b.Lines())
	b.SplitRow(3, 1)
	assert.Equal(t, []string{"ab", "", "", "c", "d"}, b.Lines())
}

func TestBufferJoinRows(t *testing.T) {
	b := bufferWithLines("ab", "cd", "ef")
	b.JoinRows(0)
	assert.Equal(t, []string{"abcd", "ef"}, b.Lines())
	b.JoinRows(1)
	assert.Equal(t, []string{"abcd", "ef"}, b.Lines())
}

func TestBufferAppendAndDeleteRow(t *testing.T) {
	b := NewBuffer()
	b.AppendBlankRow()
	b.AppendBlankRow()
	b.InsertCharacter(1, 0, 'z')
	assert.Equal(t, []string{"", "z"}, b.Lines())
	b.DeleteRow(0)
	assert.Equal(t, []string{"z"}, b.Lines())
	b.DeleteRow(0)
	assert.Equal(t, 0, b.GetRowCount())
}

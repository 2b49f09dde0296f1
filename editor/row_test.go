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
)

func TestRowInsertChar(t *testing.T) {
	r := NewRow("héllo")
	r.InsertChar(2, 'X')
	assert.Equal(t, "héXllo", r.GetString())
	r.InsertChar(99, '!')
	assert.Equal(t, "héXllo!", r.GetString())
	r.InsertChar(-3, '>')
	assert.Equal(t, ">héXllo!", r.GetString())
	assert.Equal(t, 8, r.Length())
}

func TestRowDeleteChar(t *testing.T) {
	r := NewRow("naïve")
	assert.Equal(t, 'ï', r.DeleteChar(2))
	assert.Equal(t, "nave", r.GetString())
	assert.Equal(t, rune(0), r.DeleteChar(4))
	assert.Equal(t, rune(0), r.DeleteChar(-1))
	assert.Equal(t, "nave", r.GetString())
}

func TestRowSplitAndJoin(t *testing.T) {
	r := NewRow("abcdef")
	after := r.Split(2)
	assert.Equal(t, "ab", r.GetString())
	assert.Equal(t, "cdef", after.GetString())

	// appending to the first half must not overwrite the second
	r.InsertChar(2, 'Z')
	assert.Equal(t, "cdef", after.GetString())

	r.Join(after)
	assert.Equal(t, "abZcdef", r.GetString())

	end := r.Split(100)
	assert.Equal(t, "", end.GetString())
	assert.Equal(t, "abZcdef", r.GetString())
}

func TestRowTextAfter(t *testing.T) {
	r := NewRow("abc")
	assert.Equal(t, "bc", r.TextAfter(1))
	assert.Equal(t, "", r.TextAfter(3))
	assert.Equal(t, "", r.TextAfter(-1))
}

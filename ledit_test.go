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
package main

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/ledit/editor"
)

func TestMissingFileStopsStartup(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	err := run([]string{missing})
	var ioError *editor.IOError
	require.True(t, errors.As(err, &ioError), "got %v", err)
	assert.Equal(t, missing, ioError.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestUnreadableFileStopsStartup(t *testing.T) {
	// a directory can be opened but not read as lines
	err := run([]string{t.TempDir()})
	var ioError *editor.IOError
	assert.True(t, errors.As(err, &ioError), "got %v", err)
}

func TestTooManyArguments(t *testing.T) {
	assert.Error(t, run([]string{"a", "b"}))
}

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
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const source = "testdata/harbor.txt"

func setup(t *testing.T) *Editor {
	editor := NewEditor()
	err := editor.ReadFile(source)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	return editor
}

func final(t *testing.T, editor *Editor) {
	target := filepath.Join(t.TempDir(), "final.txt")
	if err := editor.WriteFile(target); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	want, _ := os.ReadFile(source)
	got, _ := os.ReadFile(target)
	if !bytes.Equal(got, want) {
		t.Errorf("Files differ:\n%s\n---\n%s", got, want)
	}
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	editor := setup(t)
	final(t, editor)
}

// save(open(save(open(path)))) is byte-identical to the original
func TestReadWriteTwice(t *testing.T) {
	editor := setup(t)
	first := filepath.Join(t.TempDir(), "first.txt")
	if err := editor.WriteFile(first); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	if err := editor.ReadFile(first); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	final(t, editor)
}

func TestEditThenRestore(t *testing.T) {
	editor := setup(t)
	editor.SetSize(testSize)
	editor.Perform(moveDown)
	editor.Perform(moveDown)
	for _, c := range "NOTE " {
		editor.InsertChar(c)
	}
	if text := editor.GetBuffer().TextAfter(2, 0); text != "NOTE " {
		t.Errorf("Unexpected text after insertion: '%s'", text)
	}
	for i := 0; i < 5; i++ {
		editor.DeleteBackward()
	}
	// row 2 was empty, so the last backspace removed it
	if count := editor.GetBuffer().GetRowCount(); count != 19 {
		t.Errorf("Invalid row count after deletion: %d", count)
	}
	editor.SplitLine()
	if count := editor.GetBuffer().GetRowCount(); count != 20 {
		t.Errorf("Invalid row count after split: %d", count)
	}
	final(t, editor)
}

func TestReadLinesWithoutFinalNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.txt")
	os.WriteFile(path, []byte("one\ntwo"), 0644)
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("Unexpected lines: %q", lines)
	}
}

func TestReadLinesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	os.WriteFile(path, []byte{}, 0644)
	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Unexpected lines: %q", lines)
	}
}

func TestReadMissingFile(t *testing.T) {
	editor := NewEditor()
	err := editor.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected an IOError, got %+v", err)
	}
	if ioErr.Op != "open" {
		t.Errorf("Unexpected operation: %s", ioErr.Op)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist in %+v", err)
	}
}

func TestWriteWithoutFileName(t *testing.T) {
	err := WriteLines("", []string{"a"})
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected an IOError, got %+v", err)
	}
}

func TestWriteIntoMissingDirectory(t *testing.T) {
	err := WriteLines(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), []string{"a"})
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "create" {
		t.Fatalf("Expected a create IOError, got %+v", err)
	}
}

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
	"errors"
	"fmt"
)

var errNoFileName = errors.New("no file name")

// An IOError records a failed file operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// A BoundsViolation reports a cursor or offset outside its allowed range.
// Correct code never produces one; it is returned by Viewport.Validate
// and raised by debug builds.
type BoundsViolation struct {
	What  string
	Value int
	Limit int
}

func (e *BoundsViolation) Error() string {
	return fmt.Sprintf("%s out of bounds: %d (limit %d)", e.What, e.Value, e.Limit)
}

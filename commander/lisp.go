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
package commander

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/steelseries/golisp"
	"github.com/timburks/ledit/types"
)

// Lisp primitives are global, so scripts run one at a time against the
// commander that is evaluating them.
var (
	lispMutex  sync.Mutex
	lispTarget *Commander
)

func init() {
	golisp.MakePrimitiveFunction("move-up", "*", repeatImpl("move-up", types.CommandMoveUp))
	golisp.MakePrimitiveFunction("move-down", "*", repeatImpl("move-down", types.CommandMoveDown))
	golisp.MakePrimitiveFunction("move-left", "*", repeatImpl("move-left", types.CommandMoveLeft))
	golisp.MakePrimitiveFunction("move-right", "*", repeatImpl("move-right", types.CommandMoveRight))
	golisp.MakePrimitiveFunction("half-page-up", "*", repeatImpl("half-page-up", types.CommandHalfPageUp))
	golisp.MakePrimitiveFunction("half-page-down", "*", repeatImpl("half-page-down", types.CommandHalfPageDown))
	golisp.MakePrimitiveFunction("delete-backward", "*", repeatImpl("delete-backward", types.CommandDeleteBackward))
	golisp.MakePrimitiveFunction("split-line", "*", repeatImpl("split-line", types.CommandSplitLine))
	golisp.MakePrimitiveFunction("save-buffer", "0", repeatImpl("save-buffer", types.CommandSave))
	golisp.MakePrimitiveFunction("quit-editor", "0", repeatImpl("quit-editor", types.CommandQuit))
	golisp.MakePrimitiveFunction("insert-text", "1", InsertTextImpl)
	golisp.MakePrimitiveFunction("active-line", "0", ActiveLineImpl)
	golisp.MakePrimitiveFunction("cursor-column", "0", CursorColumnImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
}

func target() (*Commander, error) {
	if lispTarget == nil {
		return nil, errors.New("no editor is attached to the script")
	}
	return lispTarget, nil
}

func lineValue(c *Commander) *golisp.Data {
	return golisp.FloatWithValue(float32(c.editor.View().Line))
}

// repeatImpl builds a primitive that performs kind once, or n times for (name n).
func repeatImpl(name string, kind types.CommandKind) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		c, err := target()
		if err != nil {
			return nil, err
		}
		n, err := countArgument(name, args)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if err = c.editor.Perform(types.Command{Kind: kind}); err != nil {
				return nil, err
			}
		}
		return lineValue(c), nil
	}
}

func countArgument(name string, args *golisp.Data) (int, error) {
	if golisp.Length(args) == 0 {
		return 1, nil
	}
	val := golisp.Car(args)
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		return int(golisp.FloatValue(val)), nil
	}
	return 0, fmt.Errorf("%s requires a numeric argument", name)
}

func InsertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert-text requires a string argument")
	}
	for _, ch := range golisp.StringValue(val) {
		if err = c.editor.Perform(types.Command{Kind: types.CommandInsertChar, Ch: ch}); err != nil {
			return nil, err
		}
	}
	return lineValue(c), nil
}

func ActiveLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	return lineValue(c), nil
}

func CursorColumnImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	return golisp.FloatWithValue(float32(c.editor.View().Position.Col)), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	return golisp.FloatWithValue(float32(c.editor.View().LineCount)), nil
}

// ParseEval evaluates the forms in source against the editor and returns
// the value of the last one. The result also becomes the message.
func (c *Commander) ParseEval(source string) (string, error) {
	lispMutex.Lock()
	defer lispMutex.Unlock()
	lispTarget = c
	defer func() { lispTarget = nil }()

	value, err := golisp.ParseAndEvalAll(source)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	result := lispString(value)
	c.message = result
	return result, nil
}

func lispString(value *golisp.Data) string {
	switch {
	case value == nil:
		return ""
	case golisp.FloatP(value):
		return strconv.FormatFloat(float64(golisp.FloatValue(value)), 'f', -1, 32)
	case golisp.IntegerP(value):
		return fmt.Sprint(golisp.IntegerValue(value))
	case golisp.StringP(value):
		return golisp.StringValue(value)
	}
	return golisp.String(value)
}

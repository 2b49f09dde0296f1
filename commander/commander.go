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
	"log"

	"github.com/timburks/ledit/types"
)

const helpText = " ^S save and quit  ^Q quit  ^N/^P down/up  ^F/^B right/left  ^D/^U page  ^X lisp"

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor   types.Editor
	message  string // status message
	lispMode bool   // true while a lisp form is typed on the message bar
	lispText string // lisp form as it is being typed
}

func NewCommander(e types.Editor) *Commander {
	return &Commander{editor: e, message: helpText}
}

func (c *Commander) IsRunning() bool {
	return c.editor.IsRunning()
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	switch event.Type {
	case types.EventKey:
		return c.processKey(event)
	case types.EventResize:
		return c.processResize(event)
	case types.EventError:
		return event.Err
	default:
		return nil
	}
}

func (c *Commander) processResize(event *types.Event) error {
	size := types.Size{Rows: event.Height - types.ReservedRows, Cols: event.Width}
	if size.Rows < 0 {
		size.Rows = 0
	}
	log.Printf("resize %+v", size)
	c.editor.SetSize(size)
	return nil
}

func (c *Commander) processKey(event *types.Event) error {
	if c.lispMode {
		c.processLispKey(event)
		return nil
	}
	if event.Key == types.KeyCtrlX {
		c.lispMode = true
		c.lispText = "("
		return nil
	}
	cmd := Decode(event)
	if cmd.Kind == types.CommandNone {
		return nil
	}
	return c.editor.Perform(cmd)
}

// Lisp forms are typed on the message bar and evaluated with Enter.
// Evaluation errors are shown as the message and do not end the session.
func (c *Commander) processLispKey(event *types.Event) {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.lispMode = false
		case types.KeyEnter:
			c.lispMode = false
			if _, err := c.ParseEval(c.lispText); err != nil {
				c.message = "error: " + err.Error()
			}
		case types.KeyBackspace, types.KeyBackspace2:
			if text := []rune(c.lispText); len(text) > 0 {
				c.lispText = string(text[0 : len(text)-1])
			}
		case types.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
}

// Decode maps a key event to a command. Unbound keys decode to CommandNone.
func Decode(event *types.Event) types.Command {
	if event.Type != types.EventKey {
		return types.Command{}
	}
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyCtrlQ:
			return types.Command{Kind: types.CommandQuit}
		case types.KeyCtrlS:
			return types.Command{Kind: types.CommandSave}
		case types.KeyCtrlP, types.KeyArrowUp:
			return types.Command{Kind: types.CommandMoveUp}
		case types.KeyCtrlN, types.KeyArrowDown:
			return types.Command{Kind: types.CommandMoveDown}
		case types.KeyCtrlB, types.KeyArrowLeft:
			return types.Command{Kind: types.CommandMoveLeft}
		case types.KeyCtrlF, types.KeyArrowRight:
			return types.Command{Kind: types.CommandMoveRight}
		case types.KeyCtrlU, types.KeyPgup:
			return types.Command{Kind: types.CommandHalfPageUp}
		case types.KeyCtrlD, types.KeyPgdn:
			return types.Command{Kind: types.CommandHalfPageDown}
		case types.KeyBackspace, types.KeyBackspace2:
			return types.Command{Kind: types.CommandDeleteBackward}
		case types.KeyEnter:
			return types.Command{Kind: types.CommandSplitLine}
		case types.KeySpace:
			return types.Command{Kind: types.CommandInsertChar, Ch: ' '}
		case types.KeyTab:
			return types.Command{Kind: types.CommandInsertChar, Ch: '\t'}
		}
		return types.Command{}
	}
	if ch != 0 {
		return types.Command{Kind: types.CommandInsertChar, Ch: ch}
	}
	return types.Command{}
}

func (c *Commander) GetMessageBarText(length int) string {
	line := []rune(c.message)
	if c.lispMode {
		line = []rune(c.lispText)
	}
	if length < 0 {
		length = 0
	}
	if len(line) > length {
		line = line[0:length]
	}
	return string(line)
}

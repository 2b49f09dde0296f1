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
package types

// Directions for half-page moves
const (
	Up   = -1
	Down = 1
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type CommandKind int

// The command vocabulary understood by the editor.
const (
	CommandNone CommandKind = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandHalfPageUp
	CommandHalfPageDown
	CommandInsertChar
	CommandDeleteBackward
	CommandSplitLine
	CommandSave
	CommandQuit
)

var commandNames = map[CommandKind]string{
	CommandNone:           "None",
	CommandMoveUp:         "MoveUp",
	CommandMoveDown:       "MoveDown",
	CommandMoveLeft:       "MoveLeft",
	CommandMoveRight:      "MoveRight",
	CommandHalfPageUp:     "HalfPageUp",
	CommandHalfPageDown:   "HalfPageDown",
	CommandInsertChar:     "InsertChar",
	CommandDeleteBackward: "DeleteBackward",
	CommandSplitLine:      "SplitLine",
	CommandSave:           "Save",
	CommandQuit:           "Quit",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "Unknown"
}

// A Command is a single decoded user request.
// Ch is only meaningful for CommandInsertChar.
type Command struct {
	Kind CommandKind
	Ch   rune
}

// View describes everything a renderer needs to draw one frame.
type View struct {
	Lines     []string // lines in the visible window, starting at Offset.Rows
	Cursor    Point    // cursor position relative to the top-left cell of the viewport
	Position  Point    // cursor position in the buffer
	Offset    Size     // scroll offset: Rows is vertical, Cols is horizontal
	Line      int      // active line index
	LineCount int
	Size      Size // size of the text area
	FileName  string
}

// Event types
const (
	EventKey = iota
	EventResize
	EventMouse
	EventError
	EventInterrupt
	EventRaw
	EventNone
)

type Key uint16

type Event struct {
	Type   int
	Key    Key
	Ch     rune
	Width  int
	Height int
	Err    error
}

type Color uint16

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

type Display interface {
	SetCell(j int, i int, c rune, color Color)
	SetCellReversed(j int, i int, c rune, color Color)
	SetCursor(position Point)
}

// Keys
const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyBackspace2
	KeyCtrlB
	KeyCtrlD
	KeyCtrlF
	KeyCtrlN
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlU
	KeyCtrlX
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)

// Rows at the bottom of the screen used for the status line and the message line.
const ReservedRows = 2

type Editor interface {
	Perform(cmd Command) error
	SetSize(size Size)
	IsRunning() bool
	View() View
}

type Commander interface {
	IsRunning() bool
	ProcessEvent(event *Event) error
	GetMessageBarText(length int) string
}

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
package screen

import (
	"log"

	"github.com/nsf/termbox-go"
	"github.com/timburks/ledit/types"
)

// The Screen owns the terminal for the length of a session.
type Screen struct {
	size types.Size // screen size
}

// NewScreen puts the terminal into raw mode. Close must be called to restore it.
func NewScreen() (*Screen, error) {
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	s := &Screen{}
	s.size.Cols, s.size.Rows = termbox.Size()
	return s, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// GetTextSize returns the area available for text below which the bars are drawn.
func (s *Screen) GetTextSize() types.Size {
	size := s.size
	size.Rows -= types.ReservedRows
	if size.Rows < 0 {
		size.Rows = 0
	}
	return size
}

func (s *Screen) Render(e types.Editor, c types.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()
	RenderView(s, e.View(), c.GetMessageBarText(s.size.Cols), s.size)
	termbox.Flush()
}

func (s *Screen) SetCell(j int, i int, c rune, color types.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), termbox.ColorDefault)
}

func (s *Screen) SetCellReversed(j int, i int, c rune, color types.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), termbox.ColorWhite)
}

func (s *Screen) SetCursor(position types.Point) {
	termbox.SetCursor(position.Col, position.Row)
}

func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		s.size = types.Size{Rows: event.Height, Cols: event.Width}
	case termbox.EventError:
		log.Printf("terminal error %+v", event.Err)
	}
	return &types.Event{
		Type:   int(event.Type),
		Key:    key(event.Key),
		Ch:     event.Ch,
		Width:  event.Width,
		Height: event.Height,
		Err:    event.Err,
	}
}

func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace:
		return types.KeyBackspace
	case termbox.KeyBackspace2:
		return types.KeyBackspace2
	case termbox.KeyCtrlB:
		return types.KeyCtrlB
	case termbox.KeyCtrlD:
		return types.KeyCtrlD
	case termbox.KeyCtrlF:
		return types.KeyCtrlF
	case termbox.KeyCtrlN:
		return types.KeyCtrlN
	case termbox.KeyCtrlP:
		return types.KeyCtrlP
	case termbox.KeyCtrlQ:
		return types.KeyCtrlQ
	case termbox.KeyCtrlS:
		return types.KeyCtrlS
	case termbox.KeyCtrlU:
		return types.KeyCtrlU
	case termbox.KeyCtrlX:
		return types.KeyCtrlX
	case termbox.KeyDelete:
		return types.KeyDelete
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	default:
		return types.KeyUnsupported
	}
}

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
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/ledit/commander"
	"github.com/timburks/ledit/editor"
	"github.com/timburks/ledit/screen"
	"golang.org/x/term"
)

const logFileName = ".ledit.log"

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.SetOutput(os.Stderr)
		log.Output(1, err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 1 {
		return errors.New("usage: ledit [file]")
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()

	// If a file was specified on the command line, read it.
	// The session doesn't start if it can't be read.
	if len(args) == 1 {
		if err := e.ReadFile(args[0]); err != nil {
			return err
		}
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("standard input is not a terminal")
	}

	// Open a log file so that logging doesn't disturb the screen.
	if home, err := os.UserHomeDir(); err == nil {
		f, err := os.OpenFile(filepath.Join(home, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err == nil {
			log.SetOutput(f)
			defer f.Close()
			defer log.SetOutput(os.Stderr)
		}
	}

	// Create a screen to manage display. Closing it restores the terminal
	// on every return path, including failed saves.
	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)
	e.SetSize(s.GetTextSize())

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err = c.ProcessEvent(s.GetNextEvent()); err != nil {
			return err
		}
	}
	return nil
}

// This file is part of Mirage09.
//
// Mirage09 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mirage09 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mirage09.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"
)

// Prompt is shown before each command when reading from a terminal.
const Prompt = "> "

// Run reads and executes commands until QUIT or the end of input. If both
// input and output are terminals then the input is put into raw mode and
// lines can be edited. Otherwise RunPlain() is used.
func (mon *Monitor) Run(input *os.File, output *os.File) error {
	fd := int(input.Fd())
	if !term.IsTerminal(fd) || !term.IsTerminal(int(output.Fd())) {
		return mon.RunPlain(input)
	}

	signal.Notify(mon.intChan, os.Interrupt)
	defer signal.Stop(mon.intChan)

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{input, output}, Prompt)

	if w, h, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(w, h)
	}

	// the terminal translates line endings for raw mode
	out := mon.out
	mon.out = t
	defer func() {
		mon.out = out
	}()

	for !mon.quit {
		line, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("monitor: %w", err)
		}

		// ctrl-c only raises an interrupt when the terminal is not in raw mode
		_ = term.Restore(fd, state)
		if err := mon.Command(line); err != nil {
			mon.printError(err)
		}
		if _, err := term.MakeRaw(fd); err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
	}

	return nil
}

// RunPlain reads and executes one command per line until QUIT or the end of
// input. Errors are printed and do not stop the loop. An interrupt signal
// stops a RUN command but not the loop.
func (mon *Monitor) RunPlain(input io.Reader) error {
	signal.Notify(mon.intChan, os.Interrupt)
	defer signal.Stop(mon.intChan)

	scanner := bufio.NewScanner(input)
	for !mon.quit && scanner.Scan() {
		if err := mon.Command(scanner.Text()); err != nil {
			mon.printError(err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	return nil
}

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

package console

import (
	"io"
	"strings"
	"sync"
)

// MaxLines is the number of completed lines kept by the console.
const MaxLines = 256

// Console collects the output of the ACIA. Carriage returns are discarded and
// a line feed completes a line. The most significant bit of each byte is
// ignored when building lines but the byte is passed to the output unchanged.
type Console struct {
	crit sync.Mutex

	out   io.Writer
	line  strings.Builder
	lines []string
}

// NewConsole is the preferred method of initialisation for the Console type.
// The out argument can be nil.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	return &Console{
		out: out,
	}
}

// Write implements the io.Writer interface.
func (c *Console) Write(p []byte) (int, error) {
	c.crit.Lock()
	defer c.crit.Unlock()

	for _, b := range p {
		switch b &= 0x7f; b {
		case '\r':
		case '\n':
			c.complete()
		default:
			if b >= ' ' {
				c.line.WriteByte(b)
			}
		}
	}

	return c.out.Write(p)
}

func (c *Console) complete() {
	c.lines = append(c.lines, c.line.String())
	c.line.Reset()
	if len(c.lines) > MaxLines {
		c.lines = c.lines[len(c.lines)-MaxLines:]
	}
}

// Lines returns a copy of the completed lines, oldest first.
func (c *Console) Lines() []string {
	c.crit.Lock()
	defer c.crit.Unlock()

	l := make([]string, len(c.lines))
	copy(l, c.lines)
	return l
}

// Pending returns the line currently being received.
func (c *Console) Pending() string {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.line.String()
}

// Clear discards all lines.
func (c *Console) Clear() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.lines = c.lines[:0]
	c.line.Reset()
}

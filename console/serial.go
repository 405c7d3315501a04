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
	"errors"
	"fmt"
	"io"

	"github.com/pkg/term"
)

// DefaultBaud is the speed of the ACIA with the standard MIDI clock.
const DefaultBaud = 31250

// ErrNoDevice is returned by OpenSerial() when no device is named.
var ErrNoDevice = errors.New("no serial device")

// Serial is a host serial device in raw mode.
type Serial struct {
	name string
	t    *term.Term
}

// OpenSerial opens the named serial device at the specified speed and puts it
// in raw mode.
func OpenSerial(name string, baud int) (*Serial, error) {
	if name == "" {
		return nil, fmt.Errorf("console: %w", ErrNoDevice)
	}

	t, err := term.Open(name, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("console: %s: %w", name, err)
	}

	return &Serial{name: name, t: t}, nil
}

func (s *Serial) String() string {
	return s.name
}

// Write implements the io.Writer interface.
func (s *Serial) Write(p []byte) (int, error) {
	return s.t.Write(p)
}

// Close restores the device to its original mode and closes it.
func (s *Serial) Close() error {
	err := s.t.Restore()
	if err != nil {
		_ = s.t.Close()
		return fmt.Errorf("console: %s: %w", s.name, err)
	}
	return s.t.Close()
}

// Tee returns a writer that sends everything written to the console and to
// the serial device. The serial device can be nil.
func Tee(c *Console, s *Serial) io.Writer {
	if s == nil {
		return c
	}
	return io.MultiWriter(c, s)
}

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

// Package wav implements the sample memory of the Mirage. There are four
// banks of equal size and only one of them is visible to the CPU at any one
// time. The WAV type does not know which bank is visible. The bank is chosen
// by the caller on every access, which in the emulation is the memory package
// reading the VIA port.
//
// Accessing an offset outside of the bank or a bank number outside of the
// range 0 to 3 is a programming error and will cause a panic. The Peek() and
// Poke() functions are for debuggers and return an error instead.
package wav

import (
	"errors"
	"fmt"

	"github.com/mirage09/mirage09/hardware/memory/addresses"
	"github.com/mirage09/mirage09/hardware/preferences"
)

// ErrOutOfRange is returned by the debugging functions for offsets or bank
// numbers that do not exist.
var ErrOutOfRange = errors.New("out of range")

// WAV represents the banked sample RAM.
type WAV struct {
	prefs *preferences.Preferences
	size  int
	banks [addresses.NumBanks][]uint8
}

// NewWAV is the preferred method of initialisation for the WAV type. The size
// argument is the number of bytes in each bank, which is the size of the WAV
// region in the memory map.
func NewWAV(prefs *preferences.Preferences, size int) *WAV {
	w := &WAV{
		prefs: prefs,
		size:  size,
	}
	for i := range w.banks {
		w.banks[i] = make([]uint8, size)
	}
	return w
}

func (w *WAV) String() string {
	return fmt.Sprintf("%d banks of %d bytes", len(w.banks), w.size)
}

// Size returns the number of bytes in each bank.
func (w *WAV) Size() int {
	return w.size
}

// Reset contents of all banks.
func (w *WAV) Reset() {
	random := w.prefs != nil && w.prefs.RandomState.Get().(bool)
	for b := range w.banks {
		for i := range w.banks[b] {
			if random {
				w.banks[b][i] = uint8(w.prefs.RandSrc.Intn(0xff))
			} else {
				w.banks[b][i] = 0
			}
		}
	}
}

func (w *WAV) inRange(offset uint16, bank int) bool {
	return bank >= 0 && bank < len(w.banks) && int(offset) < w.size
}

func (w *WAV) mustBeInRange(offset uint16, bank int) {
	if !w.inRange(offset, bank) {
		panic(fmt.Sprintf("wav: access to bank %d offset %#04x is outside of %d banks of %#04x bytes",
			bank, offset, len(w.banks), w.size))
	}
}

// Read returns the byte at offset in the specified bank.
func (w *WAV) Read(offset uint16, bank int) uint8 {
	w.mustBeInRange(offset, bank)
	return w.banks[bank][offset]
}

// Write the byte to offset in the specified bank.
func (w *WAV) Write(offset uint16, bank int, data uint8) {
	w.mustBeInRange(offset, bank)
	w.banks[bank][offset] = data
}

// Peek is the debugging equivalent of Read(). It never panics.
func (w *WAV) Peek(offset uint16, bank int) (uint8, error) {
	if !w.inRange(offset, bank) {
		return 0, fmt.Errorf("wav: peek: %w: bank %d offset %#04x", ErrOutOfRange, bank, offset)
	}
	return w.banks[bank][offset], nil
}

// Poke is the debugging equivalent of Write(). It never panics.
func (w *WAV) Poke(offset uint16, bank int, data uint8) error {
	if !w.inRange(offset, bank) {
		return fmt.Errorf("wav: poke: %w: bank %d offset %#04x", ErrOutOfRange, bank, offset)
	}
	w.banks[bank][offset] = data
	return nil
}

// Bank returns a copy of the specified bank.
func (w *WAV) Bank(bank int) ([]uint8, error) {
	if !w.inRange(0, bank) {
		return nil, fmt.Errorf("wav: bank: %w: %d", ErrOutOfRange, bank)
	}
	c := make([]uint8, w.size)
	copy(c, w.banks[bank])
	return c, nil
}

// Load copies data into the specified bank from offset zero. Data longer than
// the bank is an error and nothing is copied. The remainder of the bank is
// left unchanged.
func (w *WAV) Load(bank int, data []uint8) error {
	if !w.inRange(0, bank) {
		return fmt.Errorf("wav: load: %w: bank %d", ErrOutOfRange, bank)
	}
	if len(data) > w.size {
		return fmt.Errorf("wav: load: %w: %d bytes is too long for bank", ErrOutOfRange, len(data))
	}
	copy(w.banks[bank], data)
	return nil
}

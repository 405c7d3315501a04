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

package memory

import (
	"encoding/hex"

	"github.com/mirage09/mirage09/hardware/preferences"
)

// RAM represents the program RAM of the Mirage. The OS is loaded into RAM by
// the firmware.
type RAM struct {
	prefs *preferences.Preferences
	RAM   []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM(prefs *preferences.Preferences, size int) *RAM {
	return &RAM{
		prefs: prefs,
		RAM:   make([]uint8, size),
	}
}

// Reset contents of RAM.
func (ram *RAM) Reset() {
	for i := range ram.RAM {
		if ram.prefs != nil && ram.prefs.RandomState.Get().(bool) {
			ram.RAM[i] = uint8(ram.prefs.RandSrc.Intn(0xff))
		} else {
			ram.RAM[i] = 0
		}
	}
}

func (ram *RAM) String() string {
	return hex.Dump(ram.RAM)
}

// Read the byte at offset. The offset must be in range.
func (ram *RAM) Read(offset uint16) uint8 {
	return ram.RAM[offset]
}

// Write data to offset. The offset must be in range.
func (ram *RAM) Write(offset uint16, data uint8) {
	ram.RAM[offset] = data
}

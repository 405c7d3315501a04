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
	"fmt"
	"strings"

	"github.com/mirage09/mirage09/hardware/memory/memorymap"
)

// AddressInfo is everything the monitor knows about an address.
type AddressInfo struct {
	Address uint16

	// offset into the area
	Offset uint16
	Area   memorymap.Area

	// the WAV RAM bank. only valid if Area is memorymap.WAV
	Bank int

	// the symbol from the symbols table, if any, and the label given by
	// the address namer
	Symbol string
	Label  string

	// the data at the address. if Peeked is false then Data is not valid
	Peeked bool
	Data   uint8
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%#04x", ai.Address))

	if ai.Symbol != "" {
		s.WriteString(fmt.Sprintf(" (%s)", ai.Symbol))
	}

	s.WriteString(fmt.Sprintf(" [%s %#04x", ai.Area, ai.Offset))
	if ai.Area == memorymap.WAV {
		s.WriteString(fmt.Sprintf(" bank %d", ai.Bank))
	}
	s.WriteString("]")

	if ai.Label != "" {
		s.WriteString(fmt.Sprintf(" %s", ai.Label))
	}

	if ai.Peeked {
		s.WriteString(fmt.Sprintf(" -> %#02x", ai.Data))
	}

	return s.String()
}

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

package symbols

import (
	"github.com/mirage09/mirage09/hardware/memory/addresses"
	"github.com/mirage09/mirage09/hardware/memory/memorymap"
)

// Labels used for addresses that do not have a specific name.
const (
	Unknown       = "?"
	WAVData       = "wav data section"
	BusFaultLabel = "unknown bus-fault region"
)

// BusFaultPage is the top byte of the addresses the CPU has been seen
// executing after a crash.
const BusFaultPage = uint16(0x7f00)

// the labels for the device windows. the filter window is not named
var windowLabels = []struct {
	area  memorymap.Area
	label string
}{
	{memorymap.VIA, "VIA6522"},
	{memorymap.FDC, "FDC1770"},
	{memorymap.DOC, "DOC5503"},
	{memorymap.ACIA, "ACIA"},
}

type rule struct {
	match func(address uint16) bool
	label string
}

// Namer gives a name to every address.
type Namer struct {
	rules []rule
}

// NewNamer is the preferred method of initialisation for the Namer type. The
// WAV region and the device windows are taken from the memory map.
func NewNamer(m memorymap.Map) *Namer {
	n := &Namer{}

	for _, l := range addresses.EntryPoints {
		a := l.Address
		n.rules = append(n.rules, rule{
			match: func(address uint16) bool { return address == a },
			label: l.Name,
		})
	}

	wav := m.WAV
	n.rules = append(n.rules, rule{
		match: wav.Contains,
		label: WAVData,
	})

	for _, w := range windowLabels {
		win, ok := m.Window(w.area)
		if !ok {
			continue
		}
		base := uint16(win.Base) << 8
		n.rules = append(n.rules, rule{
			match: func(address uint16) bool { return address&memorymap.WindowMask == base },
			label: w.label,
		})
	}

	n.rules = append(n.rules, rule{
		match: func(address uint16) bool { return address&memorymap.WindowMask == BusFaultPage },
		label: BusFaultLabel,
	})

	return n
}

// Name returns the name of the address. Addresses without a name return the
// Unknown label.
func (n *Namer) Name(address uint16) string {
	for _, r := range n.rules {
		if r.match(address) {
			return r.label
		}
	}
	return Unknown
}

// the namer for the default memory map
var mirage = NewNamer(memorymap.Default())

// Name returns the name of the address in the default memory map.
func Name(address uint16) string {
	return mirage.Name(address)
}

// IsKnown returns true if the label is not the Unknown label.
func IsKnown(label string) bool {
	return label != Unknown
}

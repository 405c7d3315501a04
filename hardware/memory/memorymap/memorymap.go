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

package memorymap

import (
	"errors"
	"fmt"
)

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case RAM:
		return "RAM"
	case WAV:
		return "WAV"
	case Cartridge:
		return "Cartridge"
	case VIA:
		return "VIA"
	case FDC:
		return "FDC"
	case DOC:
		return "DOC"
	case Filters:
		return "Filters"
	case ACIA:
		return "ACIA"
	}

	return "undefined"
}

// IsWindow returns true if the area is a device window.
func (a Area) IsWindow() bool {
	return a >= VIA
}

// The different memory areas in the Mirage.
const (
	Undefined Area = iota
	ROM
	RAM
	WAV
	Cartridge

	// device windows
	VIA
	FDC
	DOC
	Filters
	ACIA
)

// The origin and memory top of each region in the Mirage.
const (
	OriginWAV  = uint16(0x0000)
	MemtopWAV  = uint16(0x7fff)
	OriginRAM  = uint16(0x8000)
	MemtopRAM  = uint16(0xbfff)
	OriginCart = uint16(0xc000)
	MemtopCart = uint16(0xdfff)
	OriginROM  = uint16(0xf000)
	MemtopROM  = uint16(0xffff)
)

// The top byte of each device window in the Mirage.
const (
	WindowACIA    = uint8(0xe1)
	WindowVIA     = uint8(0xe2)
	WindowFilters = uint8(0xe4)
	WindowFDC     = uint8(0xe8)
	WindowDOC     = uint8(0xec)
)

// WindowMask selects the bits of an address that identify a device window.
// The remaining bits are the register index.
const WindowMask = uint16(0xff00)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// Sentinel errors returned by Validate().
var (
	ErrRegion  = errors.New("invalid region")
	ErrOverlap = errors.New("overlapping areas")
)

// Region is a contiguous range of addresses. Memtop is inclusive.
type Region struct {
	Origin uint16
	Memtop uint16
}

// Contains returns true if the address is in the region.
func (r Region) Contains(address uint16) bool {
	return address >= r.Origin && address <= r.Memtop
}

// Size returns the number of bytes in the region.
func (r Region) Size() int {
	return int(r.Memtop) - int(r.Origin) + 1
}

func (r Region) String() string {
	return fmt.Sprintf("%04x -> %04x", r.Origin, r.Memtop)
}

// Window is a device window. All 256 addresses with the top byte equal to
// Base belong to the window.
type Window struct {
	Area Area
	Base uint8
}

// Region returns the range of addresses covered by the window.
func (w Window) Region() Region {
	o := uint16(w.Base) << 8
	return Region{Origin: o, Memtop: o | 0x00ff}
}

// Map is the layout of the address space.
type Map struct {
	ROM       Region
	RAM       Region
	WAV       Region
	Cartridge Region
	Windows   []Window
}

// Default returns the memory map of the Mirage.
func Default() Map {
	return Map{
		ROM:       Region{Origin: OriginROM, Memtop: MemtopROM},
		RAM:       Region{Origin: OriginRAM, Memtop: MemtopRAM},
		WAV:       Region{Origin: OriginWAV, Memtop: MemtopWAV},
		Cartridge: Region{Origin: OriginCart, Memtop: MemtopCart},
		Windows: []Window{
			{Area: VIA, Base: WindowVIA},
			{Area: FDC, Base: WindowFDC},
			{Area: DOC, Base: WindowDOC},
			{Area: Filters, Base: WindowFilters},
			{Area: ACIA, Base: WindowACIA},
		},
	}
}

// Validate checks that no two areas in the map overlap. Windows are checked
// against the regions and against each other.
func (m Map) Validate() error {
	type named struct {
		area Area
		r    Region
	}

	areas := []named{
		{ROM, m.ROM},
		{RAM, m.RAM},
		{WAV, m.WAV},
		{Cartridge, m.Cartridge},
	}

	for _, a := range areas {
		if a.r.Origin > a.r.Memtop {
			return fmt.Errorf("memorymap: %w: %s %s", ErrRegion, a.area, a.r)
		}
	}

	for _, w := range m.Windows {
		if !w.Area.IsWindow() {
			return fmt.Errorf("memorymap: %w: %s is not a device window", ErrRegion, w.Area)
		}
		areas = append(areas, named{w.Area, w.Region()})
	}

	for i := range areas {
		for j := i + 1; j < len(areas); j++ {
			a := areas[i]
			b := areas[j]
			if a.r.Origin <= b.r.Memtop && b.r.Origin <= a.r.Memtop {
				return fmt.Errorf("memorymap: %w: %s (%s) and %s (%s)", ErrOverlap, a.area, a.r, b.area, b.r)
			}
		}
	}

	return nil
}

// MapAddress returns the area the address belongs to and the offset of the
// address in that area. For device windows the offset is the register index.
// For Undefined addresses the address is returned unchanged.
//
// The order of the checks is important and must not be changed.
func (m Map) MapAddress(address uint16) (uint16, Area) {
	if m.ROM.Contains(address) {
		return address - m.ROM.Origin, ROM
	}

	if m.RAM.Contains(address) {
		return address - m.RAM.Origin, RAM
	}

	if m.WAV.Contains(address) {
		return address - m.WAV.Origin, WAV
	}

	if m.Cartridge.Contains(address) {
		return address - m.Cartridge.Origin, Cartridge
	}

	for _, w := range m.Windows {
		if address&WindowMask == uint16(w.Base)<<8 {
			return address & ^WindowMask, w.Area
		}
	}

	return address, Undefined
}

// IsArea returns true if the address is in the specificied area
func (m Map) IsArea(address uint16, area Area) bool {
	_, a := m.MapAddress(address)
	return area == a
}

// Window returns the window for the area. The second return value is false
// if the map has no such window.
func (m Map) Window(area Area) (Window, bool) {
	for _, w := range m.Windows {
		if w.Area == area {
			return w, true
		}
	}
	return Window{}, false
}

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
	"errors"
	"fmt"

	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/hardware/memory/addresses"
	"github.com/mirage09/mirage09/hardware/memory/bus"
	"github.com/mirage09/mirage09/hardware/memory/devices"
	"github.com/mirage09/mirage09/hardware/memory/memorymap"
	"github.com/mirage09/mirage09/hardware/memory/wav"
	"github.com/mirage09/mirage09/logger"
	"github.com/mirage09/mirage09/symbols"
)

// OpenBus is the value read from an address that has nothing behind it.
const OpenBus = uint8(0xff)

// Sentinel errors returned when attaching ROM and cartridge images.
var (
	ErrROMSize       = errors.New("ROM image is the wrong size")
	ErrCartridgeSize = errors.New("cartridge image is too big")
)

// Memory is the memory bus of the Mirage. It implements the bus.CPUBus and
// bus.DebuggerBus interfaces.
type Memory struct {
	env  *environment.Environment
	mmap memorymap.Map

	// names for RAM addresses in the log
	namer *symbols.Namer

	rom  []uint8
	cart []uint8

	RAM     *RAM
	WAV     *wav.WAV
	Devices *devices.Devices
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// memory map must be valid. Until a ROM is attached the ROM area reads as
// 0xff.
func NewMemory(env *environment.Environment, mmap memorymap.Map) (*Memory, error) {
	if err := mmap.Validate(); err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	mem := &Memory{
		env:     env,
		mmap:    mmap,
		namer:   symbols.NewNamer(mmap),
		rom:     make([]uint8, mmap.ROM.Size()),
		RAM:     NewRAM(env.Prefs, mmap.RAM.Size()),
		WAV:     wav.NewWAV(env.Prefs, mmap.WAV.Size()),
		Devices: devices.NewDevices(env),
	}

	for i := range mem.rom {
		mem.rom[i] = OpenBus
	}

	return mem, nil
}

func (mem *Memory) String() string {
	return fmt.Sprintf("ROM %s RAM %s WAV %s (%s) Cartridge %s", mem.mmap.ROM, mem.mmap.RAM,
		mem.mmap.WAV, mem.WAV, mem.mmap.Cartridge)
}

// Map returns the memory map used by the bus.
func (mem *Memory) Map() memorymap.Map {
	return mem.mmap
}

// Namer returns the address namer for the memory map used by the bus.
func (mem *Memory) Namer() *symbols.Namer {
	return mem.namer
}

// Summary returns a description of the memory map. See memorymap.Summary()
func (mem *Memory) Summary() string {
	return mem.mmap.Summary()
}

// Reset the contents of RAM and WAV RAM. ROM and the cartridge are unchanged.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
	mem.WAV.Reset()
}

// AttachROM copies data into the ROM area. The data must be exactly the size
// of the ROM area.
func (mem *Memory) AttachROM(data []uint8) error {
	if len(data) != len(mem.rom) {
		return fmt.Errorf("memory: %w: %d bytes (should be %d)", ErrROMSize, len(data), len(mem.rom))
	}
	copy(mem.rom, data)
	return nil
}

// AttachCartridge attaches a cartridge image. An image smaller than the
// cartridge area is repeated through the area. A nil image removes the
// cartridge.
func (mem *Memory) AttachCartridge(data []uint8) error {
	if data == nil {
		mem.cart = nil
		return nil
	}
	if len(data) > mem.mmap.Cartridge.Size() {
		return fmt.Errorf("memory: %w: %d bytes (maximum %d)", ErrCartridgeSize, len(data), mem.mmap.Cartridge.Size())
	}
	mem.cart = make([]uint8, len(data))
	copy(mem.cart, data)
	return nil
}

// CurrentBank returns the WAV RAM bank currently selected by the VIA.
func (mem *Memory) CurrentBank() int {
	return mem.Devices.Bank()
}

// tracing is true if every access should be logged.
func (mem *Memory) tracing() bool {
	return mem.env.AllowLogging()
}

func (mem *Memory) readCartridge(offset uint16) uint8 {
	if len(mem.cart) == 0 || !mem.env.Prefs.CartridgeEnabled.Get().(bool) {
		return OpenBus
	}
	return mem.cart[int(offset)%len(mem.cart)]
}

// Read is an implementation of bus.CPUBus.
func (mem *Memory) Read(address uint16) uint8 {
	ma, area := mem.mmap.MapAddress(address)

	switch area {
	case memorymap.ROM:
		return mem.rom[ma]

	case memorymap.RAM:
		data := mem.RAM.Read(ma)
		if mem.tracing() {
			mem.annotate(address)
			if address == addresses.OSVec {
				logger.Logf(mem.env, "memory", "osvec %04x = %02x %02x", address,
					mem.peekRAM(address+1), mem.peekRAM(address+2))
			}
			logger.Logf(mem.env, "memory", "read RAM %04x: %02x", address, data)
		}
		return data

	case memorymap.WAV:
		bank := mem.Devices.Bank()
		data := mem.WAV.Read(ma, bank)
		logger.Logf(mem.env, "memory", "read WAV bank %d %04x: %02x", bank, address, data)
		return data

	case memorymap.Cartridge:
		data := mem.readCartridge(ma)
		logger.Logf(mem.env, "memory", "read cartridge %04x: %02x", address, data)
		return data

	case memorymap.Undefined:
		logger.Logf(mem.env, "memory", "read open bus %04x", address)
		return OpenBus
	}

	return mem.Devices.Read(area, uint8(ma))
}

// Write is an implementation of bus.CPUBus.
func (mem *Memory) Write(address uint16, data uint8) {
	ma, area := mem.mmap.MapAddress(address)

	switch area {
	case memorymap.ROM:
		logger.Logf(mem.env, "memory", "write to ROM %04x ignored: %02x", address, data)

	case memorymap.RAM:
		mem.RAM.Write(ma, data)
		if mem.tracing() {
			mem.annotate(address)
			switch address {
			case addresses.OSEntryJMPHi, addresses.OSEntryJMPLo:
				logger.Logf(mem.env, "memory", "write OS entry JMP %04x: %02x", address, data)
			case addresses.Watch:
				logger.Logf(mem.env, "memory", "write watched address %04x: %02x", address, data)
			}
			logger.Logf(mem.env, "memory", "write RAM %04x: %02x", address, data)
		}

	case memorymap.WAV:
		bank := mem.Devices.Bank()
		mem.WAV.Write(ma, bank, data)
		logger.Logf(mem.env, "memory", "write WAV bank %d %04x: %02x", bank, address, data)

	case memorymap.Cartridge:
		logger.Logf(mem.env, "memory", "write to cartridge %04x ignored: %02x", address, data)

	case memorymap.Undefined:
		logger.Logf(mem.env, "memory", "write to open bus %04x ignored: %02x", address, data)

	default:
		mem.Devices.Write(area, uint8(ma), data)
	}
}

// annotate logs the name of a RAM address if it has one.
func (mem *Memory) annotate(address uint16) {
	if l := mem.namer.Name(address); symbols.IsKnown(l) {
		logger.Logf(mem.env, "memory", "%04x is %s", address, l)
	}
}

// peekRAM returns the RAM byte at address or the open bus value if the
// address is not in RAM.
func (mem *Memory) peekRAM(address uint16) uint8 {
	ma, area := mem.mmap.MapAddress(address)
	if area != memorymap.RAM {
		return OpenBus
	}
	return mem.RAM.Read(ma)
}

// Peek is an implementation of bus.DebuggerBus. The WAV area is peeked in the
// currently selected bank.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	ma, area := mem.mmap.MapAddress(address)

	switch area {
	case memorymap.ROM:
		return mem.rom[ma], nil
	case memorymap.RAM:
		return mem.RAM.Read(ma), nil
	case memorymap.WAV:
		return mem.WAV.Peek(ma, mem.Devices.Bank())
	case memorymap.Cartridge:
		return mem.readCartridge(ma), nil
	case memorymap.Undefined:
		return OpenBus, nil
	}

	return 0, fmt.Errorf("memory: peek: %w: %04x (%s)", bus.ErrNotPeekable, address, area)
}

// Poke is an implementation of bus.DebuggerBus. Unlike Write(), a poke to ROM
// changes the ROM.
func (mem *Memory) Poke(address uint16, value uint8) error {
	ma, area := mem.mmap.MapAddress(address)

	switch area {
	case memorymap.ROM:
		mem.rom[ma] = value
		return nil
	case memorymap.RAM:
		mem.RAM.Write(ma, value)
		return nil
	case memorymap.WAV:
		return mem.WAV.Poke(ma, mem.Devices.Bank(), value)
	}

	return fmt.Errorf("memory: poke: %w: %04x (%s)", bus.ErrNotPeekable, address, area)
}

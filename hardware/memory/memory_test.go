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

package memory_test

import (
	"errors"
	"testing"

	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/hardware/memory"
	"github.com/mirage09/mirage09/hardware/memory/addresses"
	"github.com/mirage09/mirage09/hardware/memory/bus"
	"github.com/mirage09/mirage09/hardware/memory/memorymap"
	"github.com/mirage09/mirage09/hardware/peripherals/via"
	"github.com/mirage09/mirage09/logger"
	"github.com/mirage09/mirage09/test"
)

func newMemory(t *testing.T, mmap memorymap.Map) (*memory.Memory, *environment.Environment) {
	t.Helper()
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	mem, err := memory.NewMemory(env, mmap)
	test.DemandSuccess(t, err)
	return mem, env
}

func TestInterfaces(t *testing.T) {
	mem, _ := newMemory(t, memorymap.Default())
	var _ bus.CPUBus = mem
	var _ bus.DebuggerBus = mem
}

func TestInvalidMap(t *testing.T) {
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)
	m := memorymap.Default()
	m.Cartridge.Origin = 0xbf00
	_, err = memory.NewMemory(env, m)
	test.ExpectSuccess(t, errors.Is(err, memorymap.ErrOverlap))
}

func TestTotalDispatch(t *testing.T) {
	mem, env := newMemory(t, memorymap.Default())
	mem.Devices.AttachVIA(via.NewVIA())

	for _, debug := range []bool{false, true} {
		env.SetDebug(debug)
		for i := 0; i <= int(memorymap.Memtop); i++ {
			a := uint16(i)
			mem.Write(a, uint8(i))
			_ = mem.Read(a)
		}
	}
	logger.Clear()
}

func TestOpenBus(t *testing.T) {
	mem, _ := newMemory(t, memorymap.Default())

	for _, a := range []uint16{0xe000, 0xe0ff, 0xe300, 0xe5a5, 0xeb00, 0xefff} {
		mem.Write(a, 0x00)
		test.ExpectEquality(t, mem.Read(a), memory.OpenBus, a)
	}

	// the stub windows read as open bus too
	test.ExpectEquality(t, mem.Read(0xec00), memory.OpenBus)
	test.ExpectEquality(t, mem.Read(0xe41f), memory.OpenBus)
	test.ExpectEquality(t, mem.Read(0xe100), memory.OpenBus)

	// ROM reads as open bus until an image is attached
	test.ExpectEquality(t, mem.Read(0xf000), memory.OpenBus)
}

func TestRAM(t *testing.T) {
	mem, _ := newMemory(t, memorymap.Default())

	for a := int(memorymap.OriginRAM); a <= int(memorymap.MemtopRAM); a++ {
		for _, v := range []uint8{0x00, 0x01, 0x7f, 0x80, 0xa5, 0xff} {
			mem.Write(uint16(a), v)
			if !test.ExpectEquality(t, mem.Read(uint16(a)), v, uint16(a)) {
				return
			}
		}
	}

	mem.Write(0x8123, 0x42)
	mem.Reset()
	test.ExpectEquality(t, mem.Read(0x8123), uint8(0x00))
}

func TestROM(t *testing.T) {
	mem, _ := newMemory(t, memorymap.Default())

	rom := make([]uint8, 0x1000)
	for i := range rom {
		rom[i] = uint8(i * 7)
	}
	test.DemandSuccess(t, mem.AttachROM(rom))

	for i := range rom {
		a := memorymap.OriginROM + uint16(i)
		mem.Write(a, ^rom[i])
		test.ExpectEquality(t, mem.Read(a), rom[i], a)
	}

	err := mem.AttachROM(rom[:0x800])
	test.ExpectSuccess(t, errors.Is(err, memory.ErrROMSize))
}

func TestBankIsolation(t *testing.T) {
	mem, _ := newMemory(t, memorymap.Default())
	mem.Devices.AttachVIA(via.NewVIA())

	// port B as output
	mem.Write(0xe202, 0xff)

	const a = uint16(0x1234)

	mem.Write(0xe200, 0x00)
	test.ExpectEquality(t, mem.CurrentBank(), 0)
	mem.Write(a, 0x11)

	for k := 1; k < 4; k++ {
		mem.Write(0xe200, uint8(k))
		test.ExpectEquality(t, mem.CurrentBank(), k)
		test.ExpectInequality(t, mem.Read(a), uint8(0x11), k)
		mem.Write(a, uint8(0x20+k))
	}

	// only the low two bits of port B select the bank
	mem.Write(0xe200, 0xfc)
	test.ExpectEquality(t, mem.Read(a), uint8(0x11))

	for k := 1; k < 4; k++ {
		mem.Write(0xe200, uint8(k))
		test.ExpectEquality(t, mem.Read(a), uint8(0x20+k), k)
	}

	// peek and poke use the current bank
	mem.Write(0xe200, 0x02)
	v, err := mem.Peek(a)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x22))
	test.ExpectSuccess(t, mem.Poke(a, 0x99))
	mem.Write(0xe200, 0x01)
	test.ExpectEquality(t, mem.Read(a), uint8(0x21))
	mem.Write(0xe200, 0x02)
	test.ExpectEquality(t, mem.Read(a), uint8(0x99))
}

// the bank is read from the VIA for every access
func TestBankNotCached(t *testing.T) {
	mem, _ := newMemory(t, memorymap.Default())
	v := via.NewVIA()
	mem.Devices.AttachVIA(v)

	v.InputB = 0x00
	mem.Write(0x0000, 0x11)
	v.InputB = 0x03
	mem.Write(0x0000, 0x33)

	v.InputB = 0x00
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x11))
	v.InputB = 0x03
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x33))
}

type access struct {
	reg  uint8
	data uint8
}

type recorder struct {
	writes []access
	reads  []uint8
	value  uint8
}

func (r *recorder) ReadRegister(reg uint8) uint8 {
	r.reads = append(r.reads, reg)
	return r.value
}

func (r *recorder) WriteRegister(reg uint8, data uint8) {
	r.writes = append(r.writes, access{reg: reg, data: data})
}

func TestDeviceForwarding(t *testing.T) {
	mem, _ := newMemory(t, memorymap.Default())

	v := &recorder{value: 0x3c}
	f := &recorder{value: 0x80}
	mem.Devices.AttachVIA(v)
	mem.Devices.AttachFDC(f)

	mem.Write(0xe243, 0x99)
	test.DemandEquality(t, len(v.writes), 1)
	test.ExpectEquality(t, v.writes[0], access{reg: 0x43, data: 0x99})
	test.ExpectEquality(t, len(v.reads), 0)

	test.ExpectEquality(t, mem.Read(0xe20e), uint8(0x3c))
	test.DemandEquality(t, len(v.reads), 1)
	test.ExpectEquality(t, v.reads[0], uint8(0x0e))

	mem.Write(0xe803, 0x28)
	test.DemandEquality(t, len(f.writes), 1)
	test.ExpectEquality(t, f.writes[0], access{reg: 0x03, data: 0x28})
	test.ExpectEquality(t, mem.Read(0xe800), uint8(0x80))

	// neither device sees accesses to other windows
	mem.Write(0xec00, 0x01)
	mem.Write(0xe400, 0x01)
	test.ExpectEquality(t, len(v.writes), 1)
	test.ExpectEquality(t, len(f.writes), 1)

	// device windows can not be peeked or poked
	_, err := mem.Peek(0xe200)
	test.ExpectSuccess(t, errors.Is(err, bus.ErrNotPeekable))
	err = mem.Poke(0xe800, 0x00)
	test.ExpectSuccess(t, errors.Is(err, bus.ErrNotPeekable))
	test.ExpectEquality(t, len(v.reads), 1)
}

func TestConsole(t *testing.T) {
	mem, _ := newMemory(t, memorymap.Default())
	w := &test.CompareWriter{}
	mem.Devices.AttachConsole(w)
	mem.Write(0xe101, 'A')
	test.ExpectSuccess(t, w.Compare("A"))
}

func TestCartridge(t *testing.T) {
	mem, env := newMemory(t, memorymap.Default())

	test.ExpectEquality(t, mem.Read(0xc000), memory.OpenBus)

	test.DemandSuccess(t, mem.AttachCartridge([]uint8{0x01, 0x02}))
	test.ExpectEquality(t, mem.Read(0xc000), memory.OpenBus)

	test.DemandSuccess(t, env.Prefs.CartridgeEnabled.Set(true))
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0x01))
	test.ExpectEquality(t, mem.Read(0xc003), uint8(0x02))

	// writes are ignored
	mem.Write(0xc000, 0xff)
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0x01))
	test.ExpectFailure(t, mem.Poke(0xc000, 0xff))

	test.DemandSuccess(t, mem.AttachCartridge(nil))
	test.ExpectEquality(t, mem.Read(0xc000), memory.OpenBus)

	err := mem.AttachCartridge(make([]uint8, 0x2001))
	test.ExpectSuccess(t, errors.Is(err, memory.ErrCartridgeSize))
}

func TestPeekPoke(t *testing.T) {
	mem, _ := newMemory(t, memorymap.Default())

	// poking ROM changes ROM
	test.ExpectSuccess(t, mem.Poke(0xfffe, 0xf0))
	test.ExpectEquality(t, mem.Read(0xfffe), uint8(0xf0))

	test.ExpectSuccess(t, mem.Poke(0x8000, 0x12))
	v, err := mem.Peek(0x8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))

	v, err = mem.Peek(0xe000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, memory.OpenBus)
	test.ExpectFailure(t, mem.Poke(0xe000, 0x00))
}

func TestTraceLogging(t *testing.T) {
	mem, env := newMemory(t, memorymap.Default())
	w := &test.CompareWriter{}

	logger.Clear()
	mem.Write(addresses.OSEntryJMPHi, 0xb9)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	env.SetDebug(true)
	mem.Write(addresses.OSEntryJMPHi, 0xb9)
	mem.Write(addresses.OSEntryJMPLo, 0x20)
	mem.Write(addresses.Watch, 0x01)
	test.ExpectEquality(t, mem.Read(addresses.OSVec), uint8(0x00))
	_ = mem.Read(addresses.OSEntry)
	mem.Write(0xf000, 0x00)
	mem.Write(0xe000, 0x00)
	env.SetDebug(false)

	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("memory: write OS entry JMP 800f: b9\n"))
	test.ExpectSuccess(t, w.Contains("memory: write OS entry JMP 8010: 20\n"))
	test.ExpectSuccess(t, w.Contains("memory: write watched address bdeb: 01\n"))
	test.ExpectSuccess(t, w.Contains("memory: 800e is *osvec\n"))
	test.ExpectSuccess(t, w.Contains("memory: osvec 800e = b9 20\n"))
	test.ExpectSuccess(t, w.Contains("memory: b920 is *OS ENTRY\n"))
	test.ExpectSuccess(t, w.Contains("memory: write to ROM f000 ignored: 00\n"))
	test.ExpectSuccess(t, w.Contains("memory: write to open bus e000 ignored: 00\n"))
	logger.Clear()
}

// logging must not change the outcome of any access
func TestLoggingIsObservation(t *testing.T) {
	run := func(debug bool) []uint8 {
		mem, env := newMemory(t, memorymap.Default())
		mem.Devices.AttachVIA(via.NewVIA())
		env.SetDebug(debug)

		var out []uint8
		for i := 0; i <= int(memorymap.Memtop); i += 0x3f {
			mem.Write(uint16(i), uint8(i>>3))
			out = append(out, mem.Read(uint16(i)))
		}
		return out
	}

	quiet := run(false)
	noisy := run(true)
	logger.Clear()

	test.DemandEquality(t, len(quiet), len(noisy))
	for i := range quiet {
		test.ExpectEquality(t, noisy[i], quiet[i], i)
	}
}

// the example from the Mirage bring-up notes, with the ROM at the top of
// memory and RAM at the bottom
func TestAlternativeMap(t *testing.T) {
	mmap := memorymap.Map{
		ROM:       memorymap.Region{Origin: 0xc000, Memtop: 0xffff},
		RAM:       memorymap.Region{Origin: 0x0000, Memtop: 0x7fff},
		WAV:       memorymap.Region{Origin: 0x8000, Memtop: 0xbeff},
		Cartridge: memorymap.Region{Origin: 0xbf00, Memtop: 0xbfff},
	}
	mem, _ := newMemory(t, mmap)

	v := via.NewVIA()
	v.WriteRegister(addresses.VIADDRB, 0xff)
	v.WriteRegister(addresses.VIAORB, 0x00)
	mem.Devices.AttachVIA(v)

	rom := make([]uint8, 0x4000)
	rom[0] = 0xab
	test.DemandSuccess(t, mem.AttachROM(rom))

	test.ExpectEquality(t, mem.Read(0xc000), uint8(0xab))
	mem.Write(0xc000, 0x00)
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0xab))

	mem.Write(0x1234, 0x42)
	test.ExpectEquality(t, mem.Read(0x1234), uint8(0x42))

	mem.Write(0x8000, 0x11)
	v.WriteRegister(addresses.VIAORB, 0x01)
	mem.Write(0x8000, 0x22)
	v.WriteRegister(addresses.VIAORB, 0x00)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x11))
	v.WriteRegister(addresses.VIAORB, 0x01)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x22))

	test.ExpectEquality(t, mem.WAV.Size(), 0x3f00)
}

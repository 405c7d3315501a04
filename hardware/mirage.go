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

package hardware

import (
	"errors"
	"fmt"

	"github.com/mirage09/mirage09/diagnostics"
	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/hardware/memory"
	"github.com/mirage09/mirage09/hardware/memory/memorymap"
	"github.com/mirage09/mirage09/hardware/peripherals/fdc"
	"github.com/mirage09/mirage09/hardware/peripherals/via"
)

// Sentinel errors returned by Step() and Run().
var (
	ErrEmergency = errors.New("emergency state")
	ErrNoCPU     = errors.New("no CPU attached")
)

// CPU is implemented by the 6809 emulation.
type CPU interface {
	diagnostics.RegisterSource

	// Reset the CPU and load the PC from the reset vector
	Reset() error

	// Step executes a single instruction
	Step() error
}

// Mirage struct is the main container for the emulated components of the
// Mirage.
type Mirage struct {
	Env *environment.Environment

	Mem         *memory.Memory
	VIA         *via.VIA
	FDC         *fdc.FDC
	Diagnostics *diagnostics.Diagnostics

	// the CPU is not part of the package and must be attached
	CPU CPU
}

// NewMirage creates a new Mirage with the default memory map.
func NewMirage(env *environment.Environment) (*Mirage, error) {
	return NewMirageWithMap(env, memorymap.Default())
}

// NewMirageWithMap creates a new Mirage with the specified memory map. Useful
// for testing.
func NewMirageWithMap(env *environment.Environment, mmap memorymap.Map) (*Mirage, error) {
	var err error

	m := &Mirage{Env: env}

	m.Mem, err = memory.NewMemory(env, mmap)
	if err != nil {
		return nil, fmt.Errorf("mirage: %w", err)
	}

	m.VIA = via.NewVIA()
	m.FDC = fdc.NewFDC()
	m.Mem.Devices.AttachVIA(m.VIA)
	m.Mem.Devices.AttachFDC(m.FDC)

	m.Diagnostics = diagnostics.NewDiagnostics(env, m.Mem, m.Mem.Namer())

	return m, nil
}

// AttachCPU attaches the CPU emulation. The CPU should already be using the
// Mem field as its memory bus.
func (m *Mirage) AttachCPU(cpu CPU) {
	m.CPU = cpu
	m.Diagnostics.AttachCPU(cpu)
}

// AttachROM copies the ROM image into memory.
func (m *Mirage) AttachROM(data []uint8) error {
	if err := m.Mem.AttachROM(data); err != nil {
		return fmt.Errorf("mirage: %w", err)
	}
	return nil
}

// Reset the Mirage. RAM and WAV RAM are cleared, the peripherals are reset
// and then the CPU is reset. The emergency state is not affected.
func (m *Mirage) Reset() error {
	m.Mem.Reset()
	m.VIA.Reset()
	m.FDC.Reset()

	if m.CPU != nil {
		if err := m.CPU.Reset(); err != nil {
			return fmt.Errorf("mirage: %w", err)
		}
	}

	return nil
}

// Step the CPU one instruction. Returns ErrEmergency if a fault has been
// reported, whether before the call or during the instruction.
func (m *Mirage) Step() error {
	if m.Diagnostics.Emergency() {
		return fmt.Errorf("mirage: %w", ErrEmergency)
	}

	if m.CPU == nil {
		return fmt.Errorf("mirage: %w", ErrNoCPU)
	}

	if err := m.CPU.Step(); err != nil {
		return fmt.Errorf("mirage: %w", err)
	}

	if m.Diagnostics.Emergency() {
		return fmt.Errorf("mirage: %w", ErrEmergency)
	}

	return nil
}

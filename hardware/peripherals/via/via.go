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

// Package via is a register file standing in for the 6522 VIA of the Mirage.
// It is not a model of the chip. The ports honour the data direction
// registers, the interrupt flag and interrupt enable registers behave as they
// do on the chip and every other register simply stores the value written to
// it. The timers and the shift register do not run.
//
// Of importance to the memory bus is port B, the low two bits of which select
// the WAV RAM bank.
package via

import (
	"fmt"
	"strings"

	"github.com/mirage09/mirage09/hardware/memory/addresses"
)

// VIA implements the bus.RegisterBus interface.
type VIA struct {
	registers [16]uint8

	// the state of the pins of each port when they are configured as
	// inputs. external to the chip
	InputA uint8
	InputB uint8
}

// NewVIA is the preferred method of initialisation for the VIA type.
func NewVIA() *VIA {
	via := &VIA{}
	via.Reset()
	return via
}

// Reset the VIA. All registers are cleared, which configures both ports as
// inputs.
func (via *VIA) Reset() {
	for i := range via.registers {
		via.registers[i] = 0
	}
}

func (via *VIA) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("ORB=%02x DDRB=%02x ORA=%02x DDRA=%02x", via.registers[addresses.VIAORB],
		via.registers[addresses.VIADDRB], via.registers[addresses.VIAORA], via.registers[addresses.VIADDRA]))
	s.WriteString(fmt.Sprintf(" IFR=%02x IER=%02x", via.ifr(), via.registers[addresses.VIAIER]|0x80))
	return s.String()
}

// PortB returns the value seen on the port B pins.
func (via *VIA) PortB() uint8 {
	ddr := via.registers[addresses.VIADDRB]
	return (via.registers[addresses.VIAORB] & ddr) | (via.InputB & ^ddr)
}

// PortA returns the value seen on the port A pins.
func (via *VIA) PortA() uint8 {
	ddr := via.registers[addresses.VIADDRA]
	return (via.registers[addresses.VIAORA] & ddr) | (via.InputA & ^ddr)
}

// bit 7 of the IFR is set if any enabled interrupt is flagged
func (via *VIA) ifr() uint8 {
	f := via.registers[addresses.VIAIFR] & 0x7f
	if f&via.registers[addresses.VIAIER]&0x7f != 0 {
		f |= 0x80
	}
	return f
}

// SetInterrupt sets a bit in the interrupt flag register. Used to simulate an
// event external to the VIA.
func (via *VIA) SetInterrupt(mask uint8) {
	via.registers[addresses.VIAIFR] |= mask & 0x7f
}

// IRQ returns true if the VIA is asserting the IRQ line.
func (via *VIA) IRQ() bool {
	return via.ifr()&0x80 == 0x80
}

// ReadRegister implements the bus.RegisterBus interface. The register index
// is mirrored through the window.
func (via *VIA) ReadRegister(reg uint8) uint8 {
	reg &= addresses.VIARegisterMask

	switch reg {
	case addresses.VIAORB:
		return via.PortB()
	case addresses.VIAORA, addresses.VIAORAN:
		return via.PortA()
	case addresses.VIAIFR:
		return via.ifr()
	case addresses.VIAIER:
		return via.registers[reg] | 0x80
	}

	return via.registers[reg]
}

// WriteRegister implements the bus.RegisterBus interface.
func (via *VIA) WriteRegister(reg uint8, data uint8) {
	reg &= addresses.VIARegisterMask

	switch reg {
	case addresses.VIAORAN:
		via.registers[addresses.VIAORA] = data
	case addresses.VIAIFR:
		// writing a one clears the flag
		via.registers[reg] &= ^data
	case addresses.VIAIER:
		// bit 7 selects whether the other bits set or clear
		if data&0x80 == 0x80 {
			via.registers[reg] |= data & 0x7f
		} else {
			via.registers[reg] &= ^data
		}
	default:
		via.registers[reg] = data
	}
}

// Peek returns the stored value of a register without any side effect.
func (via *VIA) Peek(reg uint8) uint8 {
	return via.registers[reg&addresses.VIARegisterMask]
}

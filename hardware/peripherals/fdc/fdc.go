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

// Package fdc is a register file standing in for the WD1772 floppy disk
// controller of the Mirage. Commands complete as soon as they are written.
// The head positioning commands update the track register as they would on
// the real chip. There is never a disk in the drive so the read and write
// commands always finish with the record-not-found status.
package fdc

import (
	"fmt"

	"github.com/mirage09/mirage09/hardware/memory/addresses"
)

// Status register bits.
const (
	StatusBusy           = uint8(0x01)
	StatusTrack00        = uint8(0x04)
	StatusRecordNotFound = uint8(0x10)
	StatusMotorOn        = uint8(0x80)
)

// FDC implements the bus.RegisterBus interface.
type FDC struct {
	status  uint8
	track   uint8
	sector  uint8
	data    uint8
	command uint8

	// step direction of the most recent step command. either 1 or -1
	direction int

	intrq bool
}

// NewFDC is the preferred method of initialisation for the FDC type.
func NewFDC() *FDC {
	fdc := &FDC{}
	fdc.Reset()
	return fdc
}

// Reset the FDC.
func (fdc *FDC) Reset() {
	*fdc = FDC{
		status:    StatusTrack00,
		direction: 1,
	}
}

func (fdc *FDC) String() string {
	return fmt.Sprintf("CMD=%02x STATUS=%02x TRACK=%02x SECTOR=%02x DATA=%02x INTRQ=%v",
		fdc.command, fdc.status, fdc.track, fdc.sector, fdc.data, fdc.intrq)
}

// INTRQ returns true if the interrupt request line is active. The line is
// set at the end of every command and cleared by reading the status register
// or by writing a new command.
func (fdc *FDC) INTRQ() bool {
	return fdc.intrq
}

// Track returns the value in the track register.
func (fdc *FDC) Track() uint8 {
	return fdc.track
}

// ReadRegister implements the bus.RegisterBus interface.
func (fdc *FDC) ReadRegister(reg uint8) uint8 {
	switch reg & addresses.FDCRegisterMask {
	case addresses.FDCStatus:
		fdc.intrq = false
		return fdc.status
	case addresses.FDCTrack:
		return fdc.track
	case addresses.FDCSector:
		return fdc.sector
	}
	return fdc.data
}

// WriteRegister implements the bus.RegisterBus interface.
func (fdc *FDC) WriteRegister(reg uint8, data uint8) {
	switch reg & addresses.FDCRegisterMask {
	case addresses.FDCCommand:
		fdc.execute(data)
	case addresses.FDCTrack:
		fdc.track = data
	case addresses.FDCSector:
		fdc.sector = data
	case addresses.FDCData:
		fdc.data = data
	}
}

func (fdc *FDC) execute(cmd uint8) {
	fdc.command = cmd
	fdc.intrq = false

	// force interrupt
	if cmd&0xf0 == 0xd0 {
		fdc.status &= ^StatusBusy
		fdc.intrq = cmd&0x0f != 0
		return
	}

	// type II and type III commands
	if cmd&0x80 == 0x80 {
		fdc.status = StatusMotorOn | StatusRecordNotFound
		fdc.intrq = true
		return
	}

	// type I commands
	switch cmd & 0xe0 {
	case 0x00:
		if cmd&0x10 == 0x00 {
			// restore
			fdc.track = 0
		} else {
			// seek
			fdc.track = fdc.data
		}
	case 0x20:
		fdc.step()
	case 0x40:
		fdc.direction = 1
		fdc.step()
	case 0x60:
		fdc.direction = -1
		fdc.step()
	}

	fdc.status = StatusMotorOn
	if fdc.track == 0 {
		fdc.status |= StatusTrack00
	}
	fdc.intrq = true
}

func (fdc *FDC) step() {
	if fdc.direction > 0 {
		if fdc.track < 0xff {
			fdc.track++
		}
	} else if fdc.track > 0 {
		fdc.track--
	}
}

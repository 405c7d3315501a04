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

// Package devices routes accesses to the device windows of the Mirage memory
// map to the peripheral that occupies the window.
//
// The VIA and the floppy disk controller are attached with AttachVIA() and
// AttachFDC() and receive every access to their window. The sound chip (DOC),
// the filter registers and the serial port (ACIA) are not modelled. Accesses
// to those windows are logged and reads return the open bus value. Bytes
// written to the ACIA are copied to the console if one has been attached.
//
// A window with no attached device also reads as open bus and writes to it
// are discarded.
package devices

import (
	"io"

	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/hardware/memory/addresses"
	"github.com/mirage09/mirage09/hardware/memory/bus"
	"github.com/mirage09/mirage09/hardware/memory/memorymap"
	"github.com/mirage09/mirage09/logger"
)

// OpenBus is the value read from a register that has no device behind it.
const OpenBus = uint8(0xff)

// Devices is the collection of device windows.
type Devices struct {
	env *environment.Environment

	via     bus.RegisterBus
	fdc     bus.RegisterBus
	console io.Writer
}

// NewDevices is the preferred method of initialisation for the Devices type.
func NewDevices(env *environment.Environment) *Devices {
	return &Devices{
		env: env,
	}
}

// AttachVIA attaches the VIA model. A nil value detaches the current model.
func (dev *Devices) AttachVIA(via bus.RegisterBus) {
	dev.via = via
}

// AttachFDC attaches the floppy disk controller model. A nil value detaches
// the current model.
func (dev *Devices) AttachFDC(fdc bus.RegisterBus) {
	dev.fdc = fdc
}

// AttachConsole sets the writer that receives bytes written to the ACIA. A nil
// value detaches the console.
func (dev *Devices) AttachConsole(console io.Writer) {
	dev.console = console
}

// Bank returns the WAV RAM bank selected by the VIA. The VIA register is read
// without logging every time the function is called. If there is no VIA
// attached the port reads as open bus, which selects the last bank.
func (dev *Devices) Bank() int {
	var v uint8
	if dev.via == nil {
		v = OpenBus
	} else {
		v = dev.via.ReadRegister(addresses.BankRegister)
	}
	return int(v & addresses.BankMask)
}

// Read the register in the device window for area. The register index is the
// low byte of the address.
func (dev *Devices) Read(area memorymap.Area, reg uint8) uint8 {
	switch area {
	case memorymap.VIA:
		data := readRegister(dev.via, reg)
		logger.Logf(dev.env, "VIA", "read register %02x: %02x", reg, data)
		return data
	case memorymap.FDC:
		data := readRegister(dev.fdc, reg)
		logger.Logf(dev.env, "FDC", "read register %02x: %02x", reg, data)
		return data
	case memorymap.DOC:
		logger.Logf(dev.env, "DOC", "read register %02x", reg)
	case memorymap.Filters:
		logger.Logf(dev.env, "filters", "read register %02x", reg)
	case memorymap.ACIA:
		logger.Logf(dev.env, "ACIA", "read register %02x", reg)
	}

	return OpenBus
}

// Write data to the register in the device window for area.
func (dev *Devices) Write(area memorymap.Area, reg uint8, data uint8) {
	switch area {
	case memorymap.VIA:
		logger.Logf(dev.env, "VIA", "write register %02x: %02x", reg, data)
		if dev.via != nil {
			dev.via.WriteRegister(reg, data)
		}
	case memorymap.FDC:
		logger.Logf(dev.env, "FDC", "write register %02x: %02x", reg, data)
		if dev.fdc != nil {
			dev.fdc.WriteRegister(reg, data)
		}
	case memorymap.DOC:
		logger.Logf(dev.env, "DOC", "write register %02x", reg)
	case memorymap.Filters:
		logger.Logf(dev.env, "filters", "write register %02x: %02x", reg, data)
	case memorymap.ACIA:
		logger.Logf(dev.env, "ACIA", "write register %02x: %02x %q", reg, data, rune(data))
		if dev.console != nil {
			if _, err := dev.console.Write([]byte{data}); err != nil {
				logger.Log(dev.env, "ACIA", err)
			}
		}
	}
}

func readRegister(dev bus.RegisterBus, reg uint8) uint8 {
	if dev == nil {
		return OpenBus
	}
	return dev.ReadRegister(reg)
}

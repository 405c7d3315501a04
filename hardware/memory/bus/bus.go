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

package bus

import "errors"

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Every address in the 16 bit address space can be read or written.
// Addresses that are not mapped read as open bus and writes to them are
// discarded, so there is no error return.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// RegisterBus is implemented by the peripheral devices that occupy a device
// window. The register index is the low byte of the address and it is up to
// the device how the index is decoded.
//
// Reading a register may have side effects on the state of the device.
type RegisterBus interface {
	ReadRegister(reg uint8) uint8
	WriteRegister(reg uint8, data uint8)
}

// ErrNotPeekable is returned by DebuggerBus implementations for addresses
// where a peek or poke would have a side effect. Device windows are never
// peekable.
var ErrNotPeekable = errors.New("address is not peekable")

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
//
// Unlike the CPUBus, a Poke() to ROM will change the contents of ROM.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

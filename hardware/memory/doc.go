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

// Package memory implements the memory bus of the Mirage. Every access made
// by the CPU passes through the Read() and Write() functions of the Memory
// type, which decide which part of the machine the address belongs to.
//
//	                             ---- ROM
//	                            |
//	                            |---- RAM
//	                            |
//	CPU ---- cpu bus ---- * ----|---- WAV ---- bank from VIA port B
//	                            |
//	                            |---- Cartridge
//	                            |
//	                            |---- devices ---- VIA, FDC, DOC, etc.
//	                            |
//	                             ---- open bus
//
// The asterisk is the memorymap.Map which classifies the address. The order in
// which the areas are checked is: ROM, RAM, WAV, Cartridge and then the device
// windows. An address that belongs to none of these reads as 0xff and writes
// to it are discarded. The CPU bus can not fail.
//
// Writes to ROM are discarded. The Cartridge area reads as 0xff unless the
// cartridge preference is set and a cartridge image has been attached. Writes
// to the Cartridge are always discarded.
//
// The WAV RAM is divided into four banks. The bank that is visible is selected
// by the low two bits of VIA port B, which is read again for every access to
// the WAV area.
//
// When the debug preference is set every access is logged. RAM accesses to an
// address with a known name include the name in the log. Logging never
// changes the result of an access.
//
// The debugger bus (Peek() and Poke()) accesses memory without side effects.
// The device windows can not be peeked or poked because reading a device
// register may change the state of the device.
package memory

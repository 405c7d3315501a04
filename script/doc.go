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

// Package script runs Lua scripts against a running Mirage. Scripts can
// inspect and change memory, look up labels and symbols, step the CPU and
// receive trace events.
//
// The following functions are available to scripts:
//
//	peek(addr)          value at address without side effects
//	poke(addr, value)   change value at address without side effects
//	read(addr)          bus read, with device side effects
//	write(addr, value)  bus write
//	label(addr)         the name of the region containing address
//	symbol(name)        the address of a symbol
//	bank()              the WAV RAM bank selected by the VIA
//	step([n])           step the CPU n instructions
//	on_trace(fn)        call fn for every trace event. nil removes the callback
//	print(...)          write to the script output
//
// Addresses can be numbers or strings. A string is a symbol or a hexadecimal
// number. Functions that fail raise a Lua error.
package script

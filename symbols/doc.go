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

// Package symbols names addresses for the benefit of the user. There are two
// parts to the package.
//
// The Namer type gives a name to every address in the address space. The
// name is found by checking an ordered list of rules and the first rule that
// matches provides the name. In order, the rules are: the named entry points
// in the firmware and OS, the WAV RAM region, the device windows and the
// region the CPU is found in after crashing. Addresses that match no rule are
// named "?". The package level Name() function uses a Namer for the default
// memory map.
//
// The Symbols type contains the tables of named entry points and named RAM
// variables. The tables can be searched by name and by address and are used
// by the monitor and by scripts.
//
// Neither part of the package has any effect on how the emulation runs.
package symbols

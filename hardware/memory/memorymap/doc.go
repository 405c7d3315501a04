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

// Package memorymap describes how the 16 bit address space is divided between
// the different areas of the Mirage. There are four regions: ROM, program RAM,
// the banked WAV RAM and the cartridge (expansion) port. In addition there are
// a number of device windows. A window is 256 bytes long and is selected by
// the top byte of the address alone.
//
// The Map type holds the layout and the Default() function returns the layout
// of the real machine. Other layouts can be created for testing but they must
// pass the Validate() function before being used.
//
// MapAddress() classifies an address and returns the offset into the area.
// The order of the checks is: ROM, RAM, WAV, Cartridge and then the device
// windows. An address that matches none of these is Undefined and is treated
// as open bus by the memory package.
package memorymap

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

// Package bus defines the access patterns for the different parts of the
// emulation to the Mirage memory. The CPU accesses memory through the CPUBus
// interface. Debuggers, the monitor and scripts use the DebuggerBus, which
// never has a side effect on a device.
//
// The peripheral chips (the VIA and the floppy disk controller) are attached
// to the memory through the RegisterBus interface. The memory package forwards
// accesses to a device window to the RegisterBus of that device.
package bus

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

// Package hardware is the base package for the Mirage emulation. The Mirage
// type collects the memory, the peripherals and the diagnostics of the
// machine. There is no global state. Everything belonging to an emulation is
// reached through the Mirage instance and its Environment.
//
// The 6809 CPU is not part of this package. A CPU is attached with AttachCPU()
// and must use the Memory as its bus and call the Diagnostics hooks. Once a
// fault has been reported the Mirage refuses to step the CPU.
package hardware

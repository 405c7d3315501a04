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

// Package addresses contains the fixed addresses used by the Mirage firmware
// and the operating system it loads from disk. The values must be preserved
// exactly. They are used for labelling addresses in diagnostic output and in
// the monitor and have no effect on how the memory bus decodes an access.
//
// Firmware entry points are in ROM. The OS entry points and vectors are in
// program RAM and are only valid once the OS has been loaded by the firmware.
package addresses

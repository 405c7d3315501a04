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

// Package console is the far end of the ACIA serial port. Bytes written by
// the firmware to the ACIA data register arrive here and are collected into
// lines, copied to an output writer and optionally sent to a host serial
// device.
package console

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

// Package monitor is an interactive command line for inspecting a Mirage.
// Memory can be peeked and poked by address or by symbol, addresses can be
// named, the memory map and the log can be shown and the CPU can be stepped.
//
// Input is read from a terminal in raw mode with line editing or, when the
// input is not a terminal, one command per line. Commands are case
// insensitive. The HELP command lists them.
package monitor

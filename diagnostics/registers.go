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

package diagnostics

import "fmt"

// Registers is a copy of the 6809 registers at the moment of a fault.
type Registers struct {
	IR uint16
	PC uint16
	U  uint16
	S  uint16
	X  uint16
	Y  uint16
	DP uint8
	A  uint8
	B  uint8
	CC uint8
}

func (r Registers) String() string {
	return fmt.Sprintf("PC=%04x U=%04x S=%04x X=%04x Y=%04x DP=%02x A=%02x B=%02x CC=%02x",
		r.PC, r.U, r.S, r.X, r.Y, r.DP, r.A, r.B, r.CC)
}

// RegisterSource is implemented by the CPU.
type RegisterSource interface {
	Registers() Registers
}

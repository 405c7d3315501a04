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

package symbols

import (
	"io"

	"github.com/mirage09/mirage09/hardware/memory/addresses"
)

// Symbols contains the named entry points and the named RAM variables.
type Symbols struct {
	entryPoints *Table
	variables   *Table
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
func NewSymbols() *Symbols {
	sym := &Symbols{
		entryPoints: newTable(),
		variables:   newTable(),
	}
	for _, l := range addresses.EntryPoints {
		sym.entryPoints.add(l.Address, l.Name, false)
	}
	for _, l := range addresses.Variables {
		sym.variables.add(l.Address, l.Name, false)
	}
	return sym
}

// EntryPoints returns the table of named entry points.
func (sym *Symbols) EntryPoints() *Table {
	return sym.entryPoints
}

// Variables returns the table of named RAM variables.
func (sym *Symbols) Variables() *Table {
	return sym.variables
}

// AddVariable adds a name for a RAM address. Useful for naming addresses
// while investigating an OS. Existing names are replaced.
func (sym *Symbols) AddVariable(addr uint16, symbol string) {
	sym.variables.add(addr, symbol, true)
}

// List outputs every symbol.
func (sym *Symbols) List(output io.Writer) {
	io.WriteString(output, "Entry Points\n------------\n")
	io.WriteString(output, sym.entryPoints.String())
	io.WriteString(output, "\nVariables\n---------\n")
	io.WriteString(output, sym.variables.String())
}

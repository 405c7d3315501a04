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

package addresses_test

import (
	"testing"

	"github.com/mirage09/mirage09/hardware/memory/addresses"
	"github.com/mirage09/mirage09/test"
)

func TestUnique(t *testing.T) {
	seen := make(map[uint16]string)
	for _, l := range append(addresses.EntryPoints, addresses.Variables...) {
		if n, ok := seen[l.Address]; ok {
			t.Errorf("%04x is labelled twice: %s and %s", l.Address, n, l.Name)
		}
		seen[l.Address] = l.Name
	}
}

func TestVariables(t *testing.T) {
	// var1 to var22 are contiguous
	for i := 0; i < 22; i++ {
		l := addresses.Variables[7+i]
		test.ExpectEquality(t, l.Address, addresses.Var1+uint16(i))
	}
	test.ExpectEquality(t, addresses.Variables[7+21].Address, addresses.Var22)
}

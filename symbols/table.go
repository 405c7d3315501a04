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
	"fmt"
	"sort"
	"strings"
)

// Table maps an address to a symbol. It also keeps track of the widest symbol
// in the Table.
type Table struct {
	entries map[uint16]string

	// index of keys in entries. sortable through the sort.Interface
	idx []uint16

	// the longest symbol in the entries map
	maxWidth int
}

// newTable is the preferred method of initialisation for the table type.
func newTable() *Table {
	return &Table{
		entries: make(map[uint16]string),
		idx:     make([]uint16, 0),
	}
}

func (t *Table) String() string {
	s := strings.Builder{}
	for _, a := range t.idx {
		s.WriteString(fmt.Sprintf("%#04x -> %s\n", a, t.entries[a]))
	}
	return s.String()
}

// add symbol to table. if the address already has a symbol then the existing
// symbol is kept unless prefer is true.
func (t *Table) add(addr uint16, symbol string, prefer bool) {
	if _, ok := t.entries[addr]; ok {
		if prefer {
			t.entries[addr] = symbol
		}
	} else {
		t.entries[addr] = symbol
		t.idx = append(t.idx, addr)
		sort.Sort(t)
	}

	if len(symbol) > t.maxWidth {
		t.maxWidth = len(symbol)
	}
}

// search is case-insensitive. the symbol argument should already be in upper
// case. returns the symbol as it appears in the table
func (t *Table) search(symbol string) (string, uint16, bool) {
	for _, a := range t.idx {
		if strings.ToUpper(t.entries[a]) == symbol {
			return t.entries[a], a, true
		}
	}
	return "", 0, false
}

// Get returns the symbol for the address.
func (t *Table) Get(addr uint16) (string, bool) {
	s, ok := t.entries[addr]
	return s, ok
}

// Addresses returns the addresses in the table in ascending order.
func (t *Table) Addresses() []uint16 {
	c := make([]uint16, len(t.idx))
	copy(c, t.idx)
	return c
}

// MaxWidth returns the length of the longest symbol in the table.
func (t *Table) MaxWidth() int {
	return t.maxWidth
}

// Len implements the sort.Interface.
func (t *Table) Len() int {
	return len(t.idx)
}

// Less implements the sort.Interface.
func (t *Table) Less(i, j int) bool {
	return t.idx[i] < t.idx[j]
}

// Swap implements the sort.Interface.
func (t *Table) Swap(i, j int) {
	t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
}

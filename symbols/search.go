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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnresolved is returned by Resolve() when the string is neither a symbol
// nor an address.
var ErrUnresolved = errors.New("not a symbol or address")

// SearchTable is used to select and identify a symbol table when searching.
type SearchTable int

func (t SearchTable) String() string {
	switch t {
	case SearchAll:
		return "unspecified"
	case SearchEntryPoints:
		return "entry point"
	case SearchVariables:
		return "variable"
	}

	return ""
}

// List of valid symbol table identifiers.
const (
	SearchAll SearchTable = iota
	SearchEntryPoints
	SearchVariables
)

// SearchResults contains the normalised symbol info found in the SearchTable.
type SearchResults struct {
	Table   SearchTable
	Symbol  string
	Address uint16
}

// Search return the address of the supplied search string.
//
// Matching is case-insensitive and when TableType is SearchAll the
// search in order: entry points > variables.
func (sym *Symbols) Search(symbol string, target SearchTable) *SearchResults {
	symbolUpper := strings.ToUpper(symbol)

	if target == SearchAll || target == SearchEntryPoints {
		if norm, addr, ok := sym.entryPoints.search(symbolUpper); ok {
			return &SearchResults{
				Table:   SearchEntryPoints,
				Symbol:  norm,
				Address: addr,
			}
		}
	}

	if target == SearchAll || target == SearchVariables {
		if norm, addr, ok := sym.variables.search(symbolUpper); ok {
			return &SearchResults{
				Table:   SearchVariables,
				Symbol:  norm,
				Address: addr,
			}
		}
	}

	return nil
}

// ReverseSearch returns the symbol for specified address.
//
// When TableType is SearchAll the search in order: entry points > variables.
func (sym *Symbols) ReverseSearch(addr uint16, target SearchTable) *SearchResults {
	if target == SearchAll || target == SearchEntryPoints {
		if s, ok := sym.entryPoints.entries[addr]; ok {
			return &SearchResults{
				Table:   SearchEntryPoints,
				Symbol:  s,
				Address: addr,
			}
		}
	}
	if target == SearchAll || target == SearchVariables {
		if s, ok := sym.variables.entries[addr]; ok {
			return &SearchResults{
				Table:   SearchVariables,
				Symbol:  s,
				Address: addr,
			}
		}
	}

	return nil
}

// Resolve returns the address for a symbol or for a hexadecimal number. The
// number may be prefixed with $ or 0x. Symbols are tried first so a number
// prefix is required only if a symbol has the same spelling as a number.
func (sym *Symbols) Resolve(s string) (uint16, error) {
	if r := sym.Search(s, SearchAll); r != nil {
		return r.Address, nil
	}

	n := strings.TrimPrefix(s, "$")
	if len(n) == len(s) {
		n = strings.TrimPrefix(strings.ToLower(s), "0x")
	}

	a, err := strconv.ParseUint(n, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("symbols: %w: %s", ErrUnresolved, s)
	}

	return uint16(a), nil
}

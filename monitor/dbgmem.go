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

package monitor

import (
	"errors"
	"fmt"

	"github.com/mirage09/mirage09/hardware/memory/memorymap"
	"github.com/mirage09/mirage09/symbols"
)

// sentinel errors returned by peek() and poke()
var (
	ErrPeek = errors.New("cannot peek address")
	ErrPoke = errors.New("cannot poke address")
)

// addressInfo resolves a numeric or symbolic address.
func (mon *Monitor) addressInfo(address string) (*AddressInfo, error) {
	a, err := mon.sym.Resolve(address)
	if err != nil {
		return nil, err
	}

	ai := &AddressInfo{
		Address: a,
		Label:   mon.mirage.Mem.Namer().Name(a),
	}

	if !symbols.IsKnown(ai.Label) {
		ai.Label = ""
	}

	if r := mon.sym.ReverseSearch(a, symbols.SearchAll); r != nil {
		ai.Symbol = r.Symbol
	}

	ai.Offset, ai.Area = mon.mirage.Mem.Map().MapAddress(a)
	if ai.Area == memorymap.WAV {
		ai.Bank = mon.mirage.Mem.CurrentBank()
	}

	return ai, nil
}

// peek returns the contents of the memory address without triggering any
// side effects.
func (mon *Monitor) peek(address string) (*AddressInfo, error) {
	ai, err := mon.addressInfo(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPeek, err)
	}

	ai.Data, err = mon.mirage.Mem.Peek(ai.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPeek, err)
	}
	ai.Peeked = true

	return ai, nil
}

// poke writes a value at the address without triggering any side effects.
func (mon *Monitor) poke(address string, data uint8) (*AddressInfo, error) {
	ai, err := mon.addressInfo(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPoke, err)
	}

	err = mon.mirage.Mem.Poke(ai.Address, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPoke, err)
	}
	ai.Data = data
	ai.Peeked = true

	return ai, nil
}

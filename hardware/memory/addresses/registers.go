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

package addresses

// VIA registers. The VIA is mirrored through its window every 16 bytes.
const (
	VIAORB  = uint8(0x00)
	VIAORA  = uint8(0x01)
	VIADDRB = uint8(0x02)
	VIADDRA = uint8(0x03)
	VIAT1CL = uint8(0x04)
	VIAT1CH = uint8(0x05)
	VIAT1LL = uint8(0x06)
	VIAT1LH = uint8(0x07)
	VIAT2CL = uint8(0x08)
	VIAT2CH = uint8(0x09)
	VIASR   = uint8(0x0a)
	VIAACR  = uint8(0x0b)
	VIAPCR  = uint8(0x0c)
	VIAIFR  = uint8(0x0d)
	VIAIER  = uint8(0x0e)
	VIAORAN = uint8(0x0f)

	VIARegisterMask = uint8(0x0f)
)

// The WAV RAM bank is selected by the low bits of VIA port B. The port is
// read on every WAV RAM access.
const (
	BankRegister = VIAORB
	BankMask     = uint8(0x03)
	NumBanks     = 4
)

// WD1772 registers. Only the low two bits of the register index are decoded.
const (
	FDCStatus  = uint8(0x00)
	FDCCommand = uint8(0x00)
	FDCTrack   = uint8(0x01)
	FDCSector  = uint8(0x02)
	FDCData    = uint8(0x03)

	FDCRegisterMask = uint8(0x03)
)

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

// Firmware variables in program RAM used by the floppy disk routines.
const (
	FDCCmd  = uint16(0x8000)
	FDCRtry = uint16(0x8001)
	FDCTrk  = uint16(0x8002)
	FDCSect = uint16(0x8003)
	FDCBuff = uint16(0x8004)
	FDCStat = uint16(0x8006)
	FDCErr  = uint16(0x8007)
)

// Unnamed OS variables. Var1 to Var22 are contiguous.
const (
	Var1  = uint16(0xbf70)
	Var22 = uint16(0xbf85)
	Var23 = uint16(0xbf8c)
)

// Variables lists the RAM variables. The variable names are in lower case
// as they appear in the firmware listing.
var Variables = []Label{
	{FDCCmd, "fdccmd"},
	{FDCRtry, "fdcrtry"},
	{FDCTrk, "fdctrk"},
	{FDCSect, "fdcsect"},
	{FDCBuff, "fdcbuff"},
	{FDCStat, "fdcstat"},
	{FDCErr, "fdcerr"},
	{0xbf70, "var1"},
	{0xbf71, "var2"},
	{0xbf72, "var3"},
	{0xbf73, "var4"},
	{0xbf74, "var5"},
	{0xbf75, "var6"},
	{0xbf76, "var7"},
	{0xbf77, "var8"},
	{0xbf78, "var9"},
	{0xbf79, "var10"},
	{0xbf7a, "var11"},
	{0xbf7b, "var12"},
	{0xbf7c, "var13"},
	{0xbf7d, "var14"},
	{0xbf7e, "var15"},
	{0xbf7f, "var16"},
	{0xbf80, "var17"},
	{0xbf81, "var18"},
	{0xbf82, "var19"},
	{0xbf83, "var20"},
	{0xbf84, "var21"},
	{0xbf85, "var22"},
	{Var23, "var23"},
}

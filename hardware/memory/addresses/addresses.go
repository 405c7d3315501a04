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

// Label associates an address with a name.
type Label struct {
	Address uint16
	Name    string
}

// OS entry points and vectors. Valid for OS version 3.2
const (
	FIRQVec   = uint16(0x800b)
	OSVec     = uint16(0x800e)
	IRQEntry  = uint16(0x893c)
	FIRQEntry = uint16(0xa151)
	OSEntry   = uint16(0xb920)
)

// Firmware routines in ROM.
const (
	FDCReadSector     = uint16(0xf000)
	FDCSkipSector     = uint16(0xf013)
	FDCWriteSector    = uint16(0xf024)
	FDCFillSector     = uint16(0xf037)
	FDCReadTrack      = uint16(0xf04a)
	FDCWriteTrack     = uint16(0xf058)
	FDCRestore        = uint16(0xf066)
	FDCSeekTrack      = uint16(0xf06f)
	FDCSeekIn         = uint16(0xf07d)
	FDCSeekOut        = uint16(0xf086)
	FDCForceInterrupt = uint16(0xf08f)
	Countdown         = uint16(0xf0a7)
	NMIVec            = uint16(0xf0b0)
	ColdStart         = uint16(0xf0f0)
	RunOpSys          = uint16(0xf146)
	HWSetup           = uint16(0xf15d)
	QChipSetup        = uint16(0xf1bb)
	ClearRAM          = uint16(0xf1e5)
	LoadOpSys         = uint16(0xf20d)
	ReadSysParams     = uint16(0xf2af)
	CheckOS           = uint16(0xf306)
	ShowErrCode       = uint16(0xf33c)
	PrepareFD         = uint16(0xf38c)
	LoadOSSector      = uint16(0xf3ac)
	GotoTrack         = uint16(0xf3f1)
	SetErrCode        = uint16(0xf413)
	SaveParams        = uint16(0xf425)
	RestoreParams     = uint16(0xf437)
	ReadSector        = uint16(0xf448)
	WriteSector       = uint16(0xf476)
	GotoTrack2        = uint16(0xf4a4)
	EnableFD          = uint16(0xf4c6)
	DisableFD         = uint16(0xf4d6)
)

// EntryPoints lists the named single addresses in the order they should be
// checked. The names are the ones shown in fault reports and trace output.
var EntryPoints = []Label{
	{LoadOpSys, "LOAD OS IN PRG RAM"},
	{OSEntry, "*OS ENTRY"},
	{IRQEntry, "IRQ INTERRUPT ROUTINE ENTRY POINT"},
	{FIRQEntry, "FIRQ INTERRUPT ROUTINE ENTRY POINT"},
	{FIRQVec, "firqvec"},
	{OSVec, "*osvec"},
	{FDCReadSector, "fdcreadsector"},
	{FDCSkipSector, "fdcskipsector"},
	{FDCWriteSector, "fdcwritesector"},
	{FDCFillSector, "fdcfillsector"},
	{FDCReadTrack, "fdcreadtrack"},
	{FDCWriteTrack, "fdcwritetrack"},
	{FDCRestore, "fdcrestore"},
	{FDCSeekTrack, "fdcseektrack"},
	{FDCSeekIn, "fdcseekin"},
	{FDCSeekOut, "fdcseekout"},
	{FDCForceInterrupt, "fdcforceinterrupt"},
	{Countdown, "countdown"},
	{NMIVec, "nmivec"},
	{ColdStart, "coldstart"},
	{RunOpSys, "*runopsys"},
	{HWSetup, "hwsetup"},
	{QChipSetup, "qchipsetup"},
	{ClearRAM, "clearram"},
	{ReadSysParams, "readysysparams"},
	{CheckOS, "checkos"},
	{ShowErrCode, "showerrorcode"},
	{PrepareFD, "preparefd"},
	{LoadOSSector, "loadossector"},
	{GotoTrack, "gototrack"},
	{SetErrCode, "seterrcode"},
	{SaveParams, "saveparams"},
	{RestoreParams, "restoreparams"},
	{ReadSector, "readsector"},
	{WriteSector, "writesector"},
	{GotoTrack2, "gototrack2"},
	{EnableFD, "enablefd"},
	{DisableFD, "disablefd"},
}

// Watched RAM addresses. Writes to these are always noted in the log when
// tracing. The two bytes after OSVec are the operand of the JMP to the OS
// entry point.
const (
	OSEntryJMPHi = uint16(0x800f)
	OSEntryJMPLo = uint16(0x8010)
	Watch        = uint16(0xbdeb)
)

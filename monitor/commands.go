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

// List of commands understood by the monitor.
const (
	KeywordHelp    = "HELP"
	KeywordPeek    = "PEEK"
	KeywordPoke    = "POKE"
	KeywordLabel   = "LABEL"
	KeywordSymbol  = "SYMBOL"
	KeywordSymbols = "SYMBOLS"
	KeywordMap     = "MAP"
	KeywordBank    = "BANK"
	KeywordVIA     = "VIA"
	KeywordFDC     = "FDC"
	KeywordCPU     = "CPU"
	KeywordStep    = "STEP"
	KeywordRun     = "RUN"
	KeywordReset   = "RESET"
	KeywordDebug   = "DEBUG"
	KeywordLog     = "LOG"
	KeywordFault   = "FAULT"
	KeywordConsole = "CONSOLE"
	KeywordStruct  = "STRUCT"
	KeywordScript  = "SCRIPT"
	KeywordLua     = "LUA"
	KeywordQuit    = "QUIT"
)

// Commands is the list of top-level commands in the order they are listed by
// HELP.
var Commands = []string{
	KeywordHelp,
	KeywordPeek,
	KeywordPoke,
	KeywordLabel,
	KeywordSymbol,
	KeywordSymbols,
	KeywordMap,
	KeywordBank,
	KeywordVIA,
	KeywordFDC,
	KeywordCPU,
	KeywordStep,
	KeywordRun,
	KeywordReset,
	KeywordDebug,
	KeywordLog,
	KeywordFault,
	KeywordConsole,
	KeywordStruct,
	KeywordScript,
	KeywordLua,
	KeywordQuit,
}

// Help contains the help text for each command.
var Help = map[string]string{
	KeywordHelp:    "HELP [command]\nList commands or show help for a command",
	KeywordPeek:    "PEEK address [count]\nInspect memory without side effects. Addresses are symbols or hex numbers",
	KeywordPoke:    "POKE address value [value...]\nChange memory without side effects. Values are hex numbers",
	KeywordLabel:   "LABEL address\nName the address as it would appear in a fault report",
	KeywordSymbol:  "SYMBOL name\nShow the address of a symbol",
	KeywordSymbols: "SYMBOLS\nList all entry points and variables",
	KeywordMap:     "MAP\nShow the memory map",
	KeywordBank:    "BANK [bank]\nShow the WAV RAM bank selected by the VIA or select a different bank",
	KeywordVIA:     "VIA\nDisplay the current state of the VIA",
	KeywordFDC:     "FDC\nDisplay the current state of the floppy disk controller",
	KeywordCPU:     "CPU\nDisplay the CPU registers",
	KeywordStep:    "STEP [count]\nStep the CPU",
	KeywordRun:     "RUN [count]\nRun the CPU until it faults or is interrupted with ctrl-c. A count limits the number of instructions",
	KeywordReset:   "RESET\nReset the Mirage. The emergency state is not cleared",
	KeywordDebug:   "DEBUG [ON|OFF]\nShow or change the bus and branch tracing state",
	KeywordLog:     "LOG [count|CLEAR]\nShow the most recent log entries or clear the log",
	KeywordFault:   "FAULT\nShow the most recent fault report",
	KeywordConsole: "CONSOLE\nShow the lines received from the ACIA",
	KeywordStruct:  "STRUCT [MAP|VIA|FDC|CPU]\nOutput the structure as a graphviz diagram",
	KeywordScript:  "SCRIPT filename\nRun a Lua script",
	KeywordLua:     "LUA statement\nRun a single Lua statement",
	KeywordQuit:    "QUIT\nLeave the monitor",
}

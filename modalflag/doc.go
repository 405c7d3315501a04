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

// Package modalflag wraps the flag package of the standard library with the
// idea of modes. A mode is a word on the command line that selects the set
// of flags that follows it. Modes can have sub-modes to any depth and one of
// the sub-modes is always the default.
//
// For example:
//
//	mirage09 SAMPLES EXPORT -bank 2 out.wav
//
// Here SAMPLES is a mode and EXPORT is a sub-mode of SAMPLES. The -bank flag
// belongs to EXPORT and out.wav is a remaining argument.
//
// Usage follows a parse, inspect, new mode cycle:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "MAP")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "MAP":
//		md.NewMode()
//		verbose := md.AddBool("v", false, "verbose")
//		...
//	}
//
// Sub-mode names are compared without regard to case. If the first argument
// is not one of the sub-modes then the default sub-mode is selected and the
// argument is left for the next Parse().
//
// Help is printed automatically when -help or -h is given and includes the
// list of sub-modes and any text given to AdditionalHelp().
package modalflag

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

// Package prefs facilitates the storage of preference values. The Bool, Int
// and String types hold values safely across goroutines and call optional
// hook functions when the value changes.
//
// Preference values can be stored on disk with the Disk type:
//
//	dsk, _ := prefs.NewDisk("preferences")
//	var debug prefs.Bool
//	_ = dsk.Add("mirage.debug", &debug)
//	_ = dsk.Load()
//
// The file format is one "key :: value" line per preference, below a
// boilerplate warning line. Preferences are configuration and not emulation
// state. The prefs package is never used to save the contents of memory.
package prefs

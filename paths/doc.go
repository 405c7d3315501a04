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

// Package paths prepares paths to the files kept by Mirage09 between runs,
// currently the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// If a directory named .mirage09 exists in the current directory then that
// is the base of every resource path. Otherwise the base is .mirage09 in the
// user's home directory. Directories in the path are created as required but
// the resource itself is not.
package paths

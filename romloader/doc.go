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

// Package romloader is used to load ROM and cartridge images from disk.
// Images can be raw binary files or 7-Zip archives. In the case of an archive
// the first file in the archive is used.
//
// Every loaded image is fingerprinted. If the Hash field of the Loader is set
// before calling Load() then the fingerprint of the loaded image must match.
package romloader

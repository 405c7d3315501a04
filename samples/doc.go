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

// Package samples moves sample data between host audio files and the WAV RAM
// banks. WAV and MP3 files can be imported into a bank, a bank can be
// exported as an 8-bit mono WAV file and a bank can be rendered as a PNG
// waveform.
//
// The sound chip treats a zero byte as the end of a sample so imported data
// never contains zero. Silence is 0x80.
package samples

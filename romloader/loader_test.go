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

package romloader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mirage09/mirage09/romloader"
	"github.com/mirage09/mirage09/test"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestLoad(t *testing.T) {
	data := make([]byte, 0x1000)
	for i := range data {
		data[i] = uint8(i)
	}
	fn := writeFile(t, "mirage.rom", data)

	ld := romloader.NewLoader(fn, 0x1000)
	test.ExpectFailure(t, ld.HasLoaded())
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.ShortName(), "mirage")
	test.ExpectEquality(t, len(ld.Data), 0x1000)
	test.ExpectEquality(t, ld.Data[0x123], uint8(0x23))
	test.ExpectEquality(t, ld.Hash, romloader.Fingerprint(data))
	test.ExpectEquality(t, len(ld.Hash), 16)
	test.ExpectEquality(t, ld.Archived, "")

	// the expected hash is checked
	ld = romloader.NewLoader(fn, 0)
	ld.Hash = romloader.Fingerprint(data)
	test.ExpectSuccess(t, ld.Load())

	ld = romloader.NewLoader(fn, 0)
	ld.Hash = "0000000000000000"
	err := ld.Load()
	test.ExpectSuccess(t, errors.Is(err, romloader.ErrHash))
}

func TestWrongSize(t *testing.T) {
	fn := writeFile(t, "short.bin", make([]byte, 0x800))
	ld := romloader.NewLoader(fn, 0x1000)
	err := ld.Load()
	test.ExpectSuccess(t, errors.Is(err, romloader.ErrWrongSize))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.rom"), 0)
	err := ld.Load()
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}

func TestBadArchive(t *testing.T) {
	fn := writeFile(t, "mirage.7z", []byte("this is not a 7-Zip archive"))
	ld := romloader.NewLoader(fn, 0)
	test.ExpectFailure(t, ld.Load())
	test.ExpectFailure(t, ld.HasLoaded())
}

// mirage.7z contains mirage.rom followed by readme.txt. Both are stored
// without compression
func TestArchive(t *testing.T) {
	rom := make([]byte, 0x1000)
	for i := range rom {
		rom[i] = uint8(i*7 + 3)
	}

	ld := romloader.NewLoader(filepath.Join("testdata", "mirage.7z"), 0x1000)
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.ShortName(), "mirage")
	test.ExpectEquality(t, ld.Archived, "mirage.rom")
	test.DemandEquality(t, len(ld.Data), len(rom))
	test.ExpectEquality(t, string(ld.Data), string(rom))

	// the hash is of the extracted file and not the archive
	test.ExpectEquality(t, ld.Hash, romloader.Fingerprint(rom))

	raw := romloader.NewLoader(writeFile(t, "mirage.rom", rom), 0x1000)
	test.DemandSuccess(t, raw.Load())
	test.ExpectEquality(t, raw.Hash, ld.Hash)

	// the size check applies to the extracted file
	ld = romloader.NewLoader(filepath.Join("testdata", "mirage.7z"), 0x2000)
	err := ld.Load()
	test.ExpectSuccess(t, errors.Is(err, romloader.ErrWrongSize))
}

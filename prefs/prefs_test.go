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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mirage09/mirage09/prefs"
	"github.com/mirage09/mirage09/test"
)

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestIntAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var depth prefs.Int
	var rom prefs.String
	test.ExpectSuccess(t, dsk.Add("depth", &depth))
	test.ExpectSuccess(t, dsk.Add("rom", &rom))

	test.ExpectSuccess(t, depth.Set("16"))
	test.ExpectFailure(t, depth.Set("sixteen"))
	test.ExpectEquality(t, depth.Get().(int), 16)
	test.ExpectSuccess(t, rom.Set(" mirage.rom "))
	test.ExpectEquality(t, rom.Get().(string), "mirage.rom")

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "depth :: 16\nrom :: mirage.rom\n")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	// a missing file is not an error
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("debug", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), false)

	err = os.WriteFile(fn, []byte(fmt.Sprintf("%s\ndebug :: true\nother :: 10\n", prefs.WarningBoilerPlate)), 0o600)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), true)

	// unknown keys survive a save
	test.ExpectSuccess(t, v.Set(false))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "debug :: false\nother :: 10\n")
}

func TestNotAPrefsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello world\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dsk.Load())
}

func TestKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("key", &v))
	err = dsk.Add("key", &v)
	test.ExpectSuccess(t, errors.Is(err, prefs.ErrDuplicateKey))
	err = dsk.Add("bad key", &v)
	test.ExpectSuccess(t, errors.Is(err, prefs.ErrInvalidKey))
	err = dsk.Add("bad::key", &v)
	test.ExpectSuccess(t, errors.Is(err, prefs.ErrInvalidKey))
}

func TestHooks(t *testing.T) {
	var v prefs.Bool
	var post bool

	v.SetHookPre(func(value prefs.Value) error {
		if value.(bool) {
			return nil
		}
		return errors.New("veto")
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(bool)
		return nil
	})

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, post, true)

	// the pre hook refuses the change and the value is unchanged
	test.ExpectFailure(t, v.Set(false))
	test.ExpectEquality(t, v.Get().(bool), true)
}

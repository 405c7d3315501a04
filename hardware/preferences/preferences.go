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

// Package preferences collates the preference values used by the emulated
// hardware.
package preferences

import (
	"io"
	"math/rand"
	"time"

	"github.com/mirage09/mirage09/logger"
	"github.com/mirage09/mirage09/prefs"
)

// DefaultStackDepth is the number of bytes shown by a fault report.
const DefaultStackDepth = 16

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// emit a log entry for every bus access and for every branch, call and
	// interrupt reported by the CPU. very slow
	Debug prefs.Bool

	// echo log entries to EchoOutput as they are made
	EchoLog prefs.Bool

	// cartridge reads return the attached cartridge image rather than the
	// open bus value. an unpopulated expansion port reads as 0xff regardless
	CartridgeEnabled prefs.Bool

	// number of bytes at the stack pointer shown by a fault report
	StackDepth prefs.Int

	// initialise RAM and WAV RAM to unknown state after reset
	RandomState prefs.Bool

	// the writer used when EchoLog is true. defaults to io.Discard and should
	// be set before EchoLog is changed
	EchoOutput io.Writer

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is not empty then the preferences are loaded from
// that file and Save() will write to it.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{
		EchoOutput: io.Discard,
	}

	p.Reseed(0)

	p.EchoLog.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(p.EchoOutput)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	p.SetDefaults()

	if path == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.debug", &p.Debug)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.echolog", &p.EchoLog)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.cartridge", &p.CartridgeEnabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.stackdepth", &p.StackDepth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Debug.Set(false)
	p.EchoLog.Set(false)
	p.CartridgeEnabled.Set(false)
	p.StackDepth.Set(DefaultStackDepth)
	p.RandomState.Set(false)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Load current hardware preferences from disk. Does nothing if the
// preferences were created without a path.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk. Does nothing if the preferences
// were created without a path.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

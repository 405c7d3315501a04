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

// Package environment provides the context shared by every part of an
// emulation. There is no ambient global state in the hardware packages, they
// all reach their preferences and logging permission through the Environment.
package environment

import (
	"github.com/mirage09/mirage09/hardware/preferences"
)

// Environment is used to provide context for an emulation.
type Environment struct {
	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can be nil in which case a new Preferences instance,
// without a backing file, will be created.
func NewEnvironment(prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// AllowLogging implements the logger.Permission interface. Logging is only
// permitted when the debug preference is set.
func (env *Environment) AllowLogging() bool {
	return env.Prefs.Debug.Get().(bool)
}

// Debug returns the state of the debug flag.
func (env *Environment) Debug() bool {
	return env.Prefs.Debug.Get().(bool)
}

// SetDebug sets the debug flag. When the flag is set every bus access and
// every branch reported by the CPU is logged.
func (env *Environment) SetDebug(debug bool) {
	env.Prefs.Debug.Set(debug)
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
	env.Prefs.Reseed(1)
}

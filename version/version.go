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

// Package version reports the version of the program. A release build sets
// the version number with the linker:
//
//	go build -ldflags "-X github.com/mirage09/mirage09/version.number=v0.1.0"
//
// Other builds report "unreleased" if version control information was
// embedded by the go tool and "local" if it was not.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the program.
const ApplicationName = "Mirage09"

// set by the linker for release builds
var number string

// Info describes the build.
type Info struct {
	Version  string
	Revision string
	Release  bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, i.Revision)
}

// Version returns the version information for the running program.
func Version() Info {
	info := Info{
		Version:  number,
		Revision: "no revision information",
		Release:  number != "",
	}

	var vcs bool
	var modified bool

	if b, ok := debug.ReadBuildInfo(); ok {
		for _, s := range b.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if modified {
		info.Revision = fmt.Sprintf("%s+dirty", info.Revision)
	}

	if !info.Release {
		if vcs {
			info.Version = "unreleased"
		} else {
			info.Version = "local"
		}
	}

	return info
}

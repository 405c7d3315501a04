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

package environment_test

import (
	"testing"

	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/logger"
	"github.com/mirage09/mirage09/test"
)

func TestPermission(t *testing.T) {
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)

	var perm logger.Permission = env
	test.ExpectEquality(t, perm.AllowLogging(), false)

	env.SetDebug(true)
	test.ExpectEquality(t, env.Debug(), true)
	test.ExpectEquality(t, perm.AllowLogging(), true)

	env.Normalise()
	test.ExpectEquality(t, env.Debug(), false)
	test.ExpectEquality(t, env.Prefs.RandSeed, int64(1))
}

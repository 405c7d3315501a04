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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/mirage09/mirage09/statsview"
	"github.com/mirage09/mirage09/test"
)

func TestUnavailable(t *testing.T) {
	w := &test.CompareWriter{}
	stop := statsview.Launch(w, "")
	stop()
	test.ExpectFailure(t, statsview.Available())
	test.ExpectSuccess(t, w.Contains("not available"))
}

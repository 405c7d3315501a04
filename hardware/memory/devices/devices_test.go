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

package devices_test

import (
	"testing"

	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/hardware/memory/devices"
	"github.com/mirage09/mirage09/hardware/memory/memorymap"
	"github.com/mirage09/mirage09/logger"
	"github.com/mirage09/mirage09/test"
)

type access struct {
	reg  uint8
	data uint8
}

// recorder is a device model that remembers every write and reads back a
// fixed value
type recorder struct {
	writes []access
	reads  []uint8
	value  uint8
}

func (r *recorder) ReadRegister(reg uint8) uint8 {
	r.reads = append(r.reads, reg)
	return r.value
}

func (r *recorder) WriteRegister(reg uint8, data uint8) {
	r.writes = append(r.writes, access{reg: reg, data: data})
}

func newDevices(t *testing.T) *devices.Devices {
	t.Helper()
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)
	return devices.NewDevices(env)
}

func TestForwarding(t *testing.T) {
	dev := newDevices(t)

	via := &recorder{value: 0x5a}
	fdc := &recorder{value: 0x80}
	dev.AttachVIA(via)
	dev.AttachFDC(fdc)

	dev.Write(memorymap.VIA, 0x03, 0x42)
	test.DemandEquality(t, len(via.writes), 1)
	test.ExpectEquality(t, via.writes[0], access{reg: 0x03, data: 0x42})
	test.ExpectEquality(t, len(fdc.writes), 0)

	test.ExpectEquality(t, dev.Read(memorymap.VIA, 0x0f), uint8(0x5a))
	test.DemandEquality(t, len(via.reads), 1)
	test.ExpectEquality(t, via.reads[0], uint8(0x0f))

	dev.Write(memorymap.FDC, 0x01, 0x10)
	test.DemandEquality(t, len(fdc.writes), 1)
	test.ExpectEquality(t, fdc.writes[0], access{reg: 0x01, data: 0x10})
	test.ExpectEquality(t, dev.Read(memorymap.FDC, 0x00), uint8(0x80))
}

func TestStubs(t *testing.T) {
	dev := newDevices(t)

	test.ExpectEquality(t, dev.Read(memorymap.VIA, 0x00), devices.OpenBus)
	test.ExpectEquality(t, dev.Read(memorymap.FDC, 0x00), devices.OpenBus)
	test.ExpectEquality(t, dev.Read(memorymap.DOC, 0x10), devices.OpenBus)
	test.ExpectEquality(t, dev.Read(memorymap.Filters, 0x10), devices.OpenBus)
	test.ExpectEquality(t, dev.Read(memorymap.ACIA, 0x00), devices.OpenBus)
	test.ExpectEquality(t, dev.Read(memorymap.RAM, 0x00), devices.OpenBus)

	// writes to missing devices are discarded
	dev.Write(memorymap.VIA, 0x00, 0x01)
	dev.Write(memorymap.DOC, 0x00, 0x01)
}

func TestConsole(t *testing.T) {
	dev := newDevices(t)

	w := &test.CompareWriter{}
	dev.AttachConsole(w)
	for _, c := range []byte("OK\n") {
		dev.Write(memorymap.ACIA, 0x01, c)
	}
	test.ExpectSuccess(t, w.Compare("OK\n"))
}

func TestBank(t *testing.T) {
	dev := newDevices(t)
	test.ExpectEquality(t, dev.Bank(), 3)

	via := &recorder{value: 0xfd}
	dev.AttachVIA(via)
	test.ExpectEquality(t, dev.Bank(), 1)
}

func TestLogging(t *testing.T) {
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)
	dev := devices.NewDevices(env)

	logger.Clear()
	dev.Write(memorymap.DOC, 0x1f, 0x00)
	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	env.SetDebug(true)
	dev.Write(memorymap.DOC, 0x1f, 0x00)
	logger.Write(w)
	test.ExpectSuccess(t, w.Contains("DOC: write register 1f"))
}

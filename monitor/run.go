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

package monitor

import (
	"errors"
	"fmt"
	"os"

	"github.com/mirage09/mirage09/hardware"
)

// Interrupt stops a RUN command that is in progress. It is safe to call from
// any goroutine.
func (mon *Monitor) Interrupt() {
	select {
	case mon.intChan <- os.Interrupt:
	default:
	}
}

// run the CPU until the limit is reached, a fault is reported or the run is
// interrupted. A limit of zero means no limit.
func (mon *Monitor) run(limit int) error {
	if mon.mirage.Diagnostics.Emergency() {
		return fmt.Errorf("monitor: %w", hardware.ErrEmergency)
	}

	// discard interrupts that arrived before the run started
	select {
	case <-mon.intChan:
	default:
	}

	var count int
	var performanceBrake int
	var interrupted bool

	err := mon.mirage.Run(func() (bool, error) {
		count++
		if limit > 0 && count >= limit {
			return false, nil
		}

		performanceBrake++
		if performanceBrake < hardware.PerformanceBrake {
			return true, nil
		}
		performanceBrake = 0

		select {
		case <-mon.intChan:
			interrupted = true
			return false, nil
		default:
		}

		return !mon.mirage.Diagnostics.Emergency(), nil
	})

	if err != nil {
		if errors.Is(err, hardware.ErrEmergency) {
			mon.print("fault after %d instructions", count+1)
		}
		return fmt.Errorf("monitor: %w", err)
	}

	if interrupted {
		mon.print("interrupted after %d instructions", count)
	} else {
		mon.print("stopped after %d instructions", count)
	}
	mon.print("%s", mon.mirage.CPU.Registers().String())

	return nil
}

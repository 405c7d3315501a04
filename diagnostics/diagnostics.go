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

package diagnostics

import (
	"io"

	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/hardware/memory/bus"
	"github.com/mirage09/mirage09/symbols"
)

// Diagnostics collects the fault reporting and the trace hooks of the CPU.
type Diagnostics struct {
	env   *environment.Environment
	mem   bus.CPUBus
	namer *symbols.Namer
	cpu   RegisterSource

	// fault reports are written to output
	output io.Writer

	emergency bool
	lastFault *FaultReport

	observers    []observer
	nextObserver int
}

type observer struct {
	id int
	f  func(TraceEvent)
}

// NewDiagnostics is the preferred method of initialisation for the
// Diagnostics type. The memory is used to read the stack when a fault is
// reported and the namer gives names to addresses.
func NewDiagnostics(env *environment.Environment, mem bus.CPUBus, namer *symbols.Namer) *Diagnostics {
	return &Diagnostics{
		env:   env,
		mem:   mem,
		namer: namer,
	}
}

// AttachCPU sets the source of the register values used in fault reports.
func (d *Diagnostics) AttachCPU(cpu RegisterSource) {
	d.cpu = cpu
}

// SetOutput sets the writer that fault reports are written to. A nil writer
// means that fault reports are not written anywhere.
func (d *Diagnostics) SetOutput(output io.Writer) {
	d.output = output
}

// Emergency returns true if a fault has been reported.
func (d *Diagnostics) Emergency() bool {
	return d.emergency
}

// LastFault returns the most recent fault report. Returns nil if no fault has
// been reported.
func (d *Diagnostics) LastFault() *FaultReport {
	return d.lastFault
}

// AddObserver adds a function to be called on every trace event. Observers
// are called whether or not the debug preference is set and in the order they
// were added.
//
// The returned function removes the observer. It can be called more than once.
func (d *Diagnostics) AddObserver(f func(TraceEvent)) (remove func()) {
	id := d.nextObserver
	d.nextObserver++
	d.observers = append(d.observers, observer{id: id, f: f})

	return func() {
		for i := range d.observers {
			if d.observers[i].id == id {
				d.observers = append(d.observers[:i], d.observers[i+1:]...)
				return
			}
		}
	}
}

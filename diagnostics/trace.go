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
	"fmt"

	"github.com/mirage09/mirage09/logger"
)

// EventKind identifies the type of TraceEvent.
type EventKind int

// List of valid EventKind values.
const (
	Branch EventKind = iota
	BranchToSubroutine
	NMI
	IRQ
	FIRQ
)

func (k EventKind) String() string {
	switch k {
	case Branch:
		return "branch"
	case BranchToSubroutine:
		return "call"
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	case FIRQ:
		return "FIRQ"
	}
	return "unknown"
}

// TraceEvent describes a change in the flow of execution.
type TraceEvent struct {
	Kind EventKind

	// the mnemonic of the instruction causing the branch. empty for
	// interrupts
	Opcode string

	Src uint16
	Dst uint16

	// the name of the destination address
	Label string
}

func (ev TraceEvent) String() string {
	switch ev.Kind {
	case Branch, BranchToSubroutine:
		return fmt.Sprintf("%s with opcode %s from %04x to %04x (%s)", ev.Kind, ev.Opcode, ev.Src, ev.Dst, ev.Label)
	}
	return fmt.Sprintf("%s from %04x to %04x (%s)", ev.Kind, ev.Src, ev.Dst, ev.Label)
}

func (d *Diagnostics) trace(kind EventKind, opcode string, src uint16, dst uint16) {
	debug := d.env.AllowLogging()
	if !debug && len(d.observers) == 0 {
		return
	}

	ev := TraceEvent{
		Kind:   kind,
		Opcode: opcode,
		Src:    src,
		Dst:    dst,
		Label:  d.namer.Name(dst),
	}

	if debug {
		logger.Log(d.env, "trace", ev)
	}

	for _, o := range d.observers {
		o.f(ev)
	}
}

// OnBranch is called by the CPU before a branch or jump is taken.
func (d *Diagnostics) OnBranch(opcode string, src uint16, dst uint16) {
	d.trace(Branch, opcode, src, dst)
}

// OnBranchToSubroutine is called by the CPU before a subroutine call.
func (d *Diagnostics) OnBranchToSubroutine(opcode string, src uint16, dst uint16) {
	d.trace(BranchToSubroutine, opcode, src, dst)
}

// OnNMI is called by the CPU before it jumps to the NMI vector.
func (d *Diagnostics) OnNMI(src uint16, dst uint16) {
	d.trace(NMI, "", src, dst)
}

// OnIRQ is called by the CPU before it jumps to the IRQ vector.
func (d *Diagnostics) OnIRQ(src uint16, dst uint16) {
	d.trace(IRQ, "", src, dst)
}

// OnFIRQ is called by the CPU before it jumps to the FIRQ vector.
func (d *Diagnostics) OnFIRQ(src uint16, dst uint16) {
	d.trace(FIRQ, "", src, dst)
}

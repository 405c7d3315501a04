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

package diagnostics_test

import (
	"testing"

	"github.com/mirage09/mirage09/diagnostics"
	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/hardware/memory"
	"github.com/mirage09/mirage09/hardware/memory/memorymap"
	"github.com/mirage09/mirage09/logger"
	"github.com/mirage09/mirage09/symbols"
	"github.com/mirage09/mirage09/test"
)

type fakeCPU struct {
	regs diagnostics.Registers
}

func (cpu *fakeCPU) Registers() diagnostics.Registers {
	return cpu.regs
}

func setup(t *testing.T) (*diagnostics.Diagnostics, *memory.Memory, *environment.Environment) {
	t.Helper()
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	mmap := memorymap.Default()
	mem, err := memory.NewMemory(env, mmap)
	test.DemandSuccess(t, err)

	return diagnostics.NewDiagnostics(env, mem, symbols.NewNamer(mmap)), mem, env
}

func TestFault(t *testing.T) {
	diag, mem, _ := setup(t)

	cpu := &fakeCPU{
		regs: diagnostics.Registers{
			IR: 0x0001,
			PC: 0xf0f0,
			U:  0x8000,
			S:  0xbf00,
			X:  0xe800,
			Y:  0x7f00,
			DP: 0x00,
			A:  0x12,
			B:  0x34,
			CC: 0xd0,
		},
	}
	diag.AttachCPU(cpu)

	stack := []uint8{0xb9, 0x20, 0xf0, 0xf0, 0xe2, 0x00}
	for i := 0; i < 17; i++ {
		v := uint8(0xc1)
		if i < len(stack) {
			v = stack[i]
		}
		mem.Write(0xbf00+uint16(i), v)
	}

	w := &test.CompareWriter{}
	diag.SetOutput(w)

	test.ExpectFailure(t, diag.Emergency())
	test.ExpectSuccess(t, diag.LastFault() == nil)

	rep := diag.ReportFault("invalid opcode 01")
	test.ExpectSuccess(t, diag.Emergency())
	test.ExpectSuccess(t, diag.LastFault() == rep)

	test.ExpectSuccess(t, w.Contains("CPU error detected: invalid opcode 01\nEMERGENCY.\n"))
	test.ExpectSuccess(t, w.Contains("IR 0001 (wav data section)\n"))
	test.ExpectSuccess(t, w.Contains("PC f0f0 (coldstart)\n"))
	test.ExpectSuccess(t, w.Contains("U  8000 (?)\n"))
	test.ExpectSuccess(t, w.Contains("S  bf00 (?)\n"))
	test.ExpectSuccess(t, w.Contains("X  e800 (FDC1770)\n"))
	test.ExpectSuccess(t, w.Contains("Y  7f00 (wav data section)\n"))
	test.ExpectSuccess(t, w.Contains("DP 00\nA  12\nB  34\nCC d0\n"))
	test.ExpectSuccess(t, w.Contains("Stack:\nbf00: b9 20 f0 f0 e2 00 c1 c1 c1 c1 c1 c1 c1 c1 c1 c1\n"))
	test.ExpectSuccess(t, w.Contains("[bf00] = b920 ~ *OS ENTRY\n"))
	test.ExpectSuccess(t, w.Contains("[bf02] = f0f0 ~ coldstart\n"))
	test.ExpectSuccess(t, w.Contains("[bf04] = e200 ~ VIA6522\n"))

	// every named 16 bit value is a candidate, including those in the WAV
	// region. it is only a heuristic
	test.ExpectEquality(t, len(rep.Candidates), 5)
	test.ExpectEquality(t, rep.Candidates[1], diagnostics.Candidate{
		Location: 0xbf01,
		Address:  0x20f0,
		Label:    symbols.WAVData,
	})
	test.ExpectEquality(t, len(rep.Stack), 16)
	test.ExpectEquality(t, rep.Registers, cpu.regs)
	test.ExpectEquality(t, rep.String(), w.String())

	// reporting again does not leave the emergency state
	w.Clear()
	_ = diag.ReportFault("")
	test.ExpectSuccess(t, diag.Emergency())
	test.ExpectSuccess(t, w.Contains("CPU error detected: No message specified\n"))

	logger.Clear()
}

func TestStackDepth(t *testing.T) {
	diag, _, env := setup(t)
	test.DemandSuccess(t, env.Prefs.StackDepth.Set(4))

	rep := diag.ReportFault("no cpu attached")
	test.ExpectEquality(t, len(rep.Stack), 4)
	test.ExpectSuccess(t, diag.Emergency())

	// without a CPU the registers are all zero and the stack is at address
	// zero, which is WAV RAM
	test.ExpectEquality(t, rep.Registers, diagnostics.Registers{})
	test.ExpectEquality(t, len(rep.Candidates), 4)

	logger.Clear()
}

func TestTrace(t *testing.T) {
	diag, _, env := setup(t)
	w := &test.CompareWriter{}

	logger.Clear()
	diag.OnBranch("BRA", 0xf000, 0xf0f0)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	env.SetDebug(true)
	diag.OnBranch("BRA", 0xf000, 0xf0f0)
	diag.OnBranchToSubroutine("JSR", 0xf0f2, 0xf15d)
	diag.OnNMI(0x1234, 0xf0b0)
	diag.OnIRQ(0xb920, 0x893c)
	diag.OnFIRQ(0xb920, 0xa151)
	env.SetDebug(false)

	logger.Write(w)
	test.ExpectEquality(t, w.Lines()[0], "trace: branch with opcode BRA from f000 to f0f0 (coldstart)")
	test.ExpectEquality(t, w.Lines()[1], "trace: call with opcode JSR from f0f2 to f15d (hwsetup)")
	test.ExpectEquality(t, w.Lines()[2], "trace: NMI from 1234 to f0b0 (nmivec)")
	test.ExpectEquality(t, w.Lines()[3], "trace: IRQ from b920 to 893c (IRQ INTERRUPT ROUTINE ENTRY POINT)")
	test.ExpectEquality(t, w.Lines()[4], "trace: FIRQ from b920 to a151 (FIRQ INTERRUPT ROUTINE ENTRY POINT)")

	// hooks do not change the emergency state
	test.ExpectFailure(t, diag.Emergency())
	logger.Clear()
}

func TestObservers(t *testing.T) {
	diag, _, _ := setup(t)

	var events []diagnostics.TraceEvent
	diag.AddObserver(func(ev diagnostics.TraceEvent) {
		events = append(events, ev)
	})

	// observers are called without the debug preference
	diag.OnBranchToSubroutine("BSR", 0xf100, 0xf1e5)
	diag.OnIRQ(0x8000, 0x893c)

	test.DemandEquality(t, len(events), 2)
	test.ExpectEquality(t, events[0], diagnostics.TraceEvent{
		Kind:   diagnostics.BranchToSubroutine,
		Opcode: "BSR",
		Src:    0xf100,
		Dst:    0xf1e5,
		Label:  "clearram",
	})
	test.ExpectEquality(t, events[1].Kind, diagnostics.IRQ)
	test.ExpectEquality(t, events[1].String(), "IRQ from 8000 to 893c (IRQ INTERRUPT ROUTINE ENTRY POINT)")
}

func TestRemoveObserver(t *testing.T) {
	diag, _, _ := setup(t)

	var a, b int
	removeA := diag.AddObserver(func(_ diagnostics.TraceEvent) { a++ })
	removeB := diag.AddObserver(func(_ diagnostics.TraceEvent) { b++ })

	diag.OnNMI(0x8000, 0xf0f0)
	test.ExpectEquality(t, a, 1)
	test.ExpectEquality(t, b, 1)

	removeA()
	diag.OnNMI(0x8000, 0xf0f0)
	test.ExpectEquality(t, a, 1)
	test.ExpectEquality(t, b, 2)

	// removing twice has no effect on the remaining observers
	removeA()
	diag.OnNMI(0x8000, 0xf0f0)
	test.ExpectEquality(t, b, 3)

	removeB()
	diag.OnNMI(0x8000, 0xf0f0)
	test.ExpectEquality(t, a, 1)
	test.ExpectEquality(t, b, 3)
}

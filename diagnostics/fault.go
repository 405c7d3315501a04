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
	"strings"

	"github.com/mirage09/mirage09/logger"
	"github.com/mirage09/mirage09/symbols"
)

// Candidate is a value found on the stack that has a name and which might be
// a return address.
type Candidate struct {
	// the address on the stack where the value was found
	Location uint16

	// the value and its name
	Address uint16
	Label   string
}

// FaultReport is created by ReportFault().
type FaultReport struct {
	Message   string
	Registers Registers

	// the bytes read from the stack, starting at the stack pointer
	Stack []uint8

	// possible return addresses found in the stack bytes
	Candidates []Candidate

	// names for the six 16 bit registers
	labels [6]string
}

func (rep *FaultReport) String() string {
	s := strings.Builder{}

	s.WriteString("CPU error detected: ")
	if rep.Message == "" {
		s.WriteString("No message specified\n")
	} else {
		s.WriteString(rep.Message)
		s.WriteString("\n")
	}
	s.WriteString("EMERGENCY.\n")

	r := rep.Registers
	s.WriteString("Register dump:\n")
	s.WriteString(fmt.Sprintf("IR %04x (%s)\n", r.IR, rep.labels[0]))
	s.WriteString(fmt.Sprintf("PC %04x (%s)\n", r.PC, rep.labels[1]))
	s.WriteString(fmt.Sprintf("U  %04x (%s)\n", r.U, rep.labels[2]))
	s.WriteString(fmt.Sprintf("S  %04x (%s)\n", r.S, rep.labels[3]))
	s.WriteString(fmt.Sprintf("X  %04x (%s)\n", r.X, rep.labels[4]))
	s.WriteString(fmt.Sprintf("Y  %04x (%s)\n", r.Y, rep.labels[5]))
	s.WriteString(fmt.Sprintf("DP %02x\n", r.DP))
	s.WriteString(fmt.Sprintf("A  %02x\n", r.A))
	s.WriteString(fmt.Sprintf("B  %02x\n", r.B))
	s.WriteString(fmt.Sprintf("CC %02x\n", r.CC))
	s.WriteString("\n")

	s.WriteString(fmt.Sprintf("Stack:\n%04x:", r.S))
	for _, v := range rep.Stack {
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	s.WriteString("\n")

	for _, c := range rep.Candidates {
		s.WriteString(fmt.Sprintf("[%04x] = %04x ~ %s\n", c.Location, c.Address, c.Label))
	}

	return s.String()
}

// ReportFault is called by the CPU when it can not continue. The message
// should describe the fault. The report is written to the output and a
// summary is added to the log. The Diagnostics is in the emergency state
// after the function returns.
//
// The stack bytes are read through the CPU bus and so may have side effects
// if the stack pointer is pointing at a device window.
func (d *Diagnostics) ReportFault(message string) *FaultReport {
	rep := &FaultReport{
		Message: message,
	}

	if d.cpu != nil {
		rep.Registers = d.cpu.Registers()
	}

	r := rep.Registers
	for i, v := range []uint16{r.IR, r.PC, r.U, r.S, r.X, r.Y} {
		rep.labels[i] = d.namer.Name(v)
	}

	depth := d.env.Prefs.StackDepth.Get().(int)
	if depth < 0 {
		depth = 0
	}

	rep.Stack = make([]uint8, depth)
	for i := range rep.Stack {
		rep.Stack[i] = d.mem.Read(r.S + uint16(i))
	}

	// the 6809 is big-endian
	for i := 0; i < depth; i++ {
		loc := r.S + uint16(i)
		hi := d.mem.Read(loc)
		lo := d.mem.Read(loc + 1)
		v := uint16(hi)<<8 | uint16(lo)
		if l := d.namer.Name(v); symbols.IsKnown(l) {
			rep.Candidates = append(rep.Candidates, Candidate{
				Location: loc,
				Address:  v,
				Label:    l,
			})
		}
	}

	if d.output != nil {
		if _, err := d.output.Write([]byte(rep.String())); err != nil {
			logger.Log(logger.Allow, "diagnostics", err)
		}
	}

	if message == "" {
		logger.Logf(logger.Allow, "diagnostics", "CPU error at %04x", r.PC)
	} else {
		logger.Logf(logger.Allow, "diagnostics", "CPU error at %04x: %s", r.PC, message)
	}

	d.emergency = true
	d.lastFault = rep

	return rep
}

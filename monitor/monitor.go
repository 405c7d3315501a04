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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/mirage09/mirage09/console"
	"github.com/mirage09/mirage09/hardware"
	"github.com/mirage09/mirage09/hardware/memory/addresses"
	"github.com/mirage09/mirage09/logger"
	"github.com/mirage09/mirage09/script"
	"github.com/mirage09/mirage09/symbols"
)

// Sentinel errors returned by Command().
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong arguments")
)

// Monitor is the command line interface to a Mirage.
type Monitor struct {
	mirage *hardware.Mirage
	sym    *symbols.Symbols
	con    *console.Console

	// created on first use
	scr *script.Script

	out  io.Writer
	quit bool

	// interrupts a RUN command
	intChan chan os.Signal
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mirage *hardware.Mirage, out io.Writer) *Monitor {
	if out == nil {
		out = io.Discard
	}
	return &Monitor{
		mirage:  mirage,
		sym:     symbols.NewSymbols(),
		out:     out,
		intChan: make(chan os.Signal, 1),
	}
}

// AttachConsole sets the console shown by the CONSOLE command.
func (mon *Monitor) AttachConsole(con *console.Console) {
	mon.con = con
}

// Symbols returns the symbols table used to resolve addresses.
func (mon *Monitor) Symbols() *symbols.Symbols {
	return mon.sym
}

// Quit returns true once the QUIT command has been issued.
func (mon *Monitor) Quit() bool {
	return mon.quit
}

// Close releases any resources held by the monitor.
func (mon *Monitor) Close() {
	if mon.scr != nil {
		mon.scr.Close()
		mon.scr = nil
	}
}

// Write implements the io.Writer interface. Output is sent to the current
// output of the monitor.
func (mon *Monitor) Write(p []byte) (int, error) {
	return mon.out.Write(p)
}

func (mon *Monitor) print(s string, a ...any) {
	fmt.Fprintf(mon.out, s, a...)
	fmt.Fprintln(mon.out)
}

func (mon *Monitor) printError(err error) {
	mon.print("* %s", err)
}

func (mon *Monitor) script() *script.Script {
	if mon.scr == nil {
		mon.scr = script.NewScript(mon.mirage, mon.sym, mon)
	}
	return mon.scr
}

func parseValue(s string) (uint8, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "$"), "0x")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a byte value", ErrArguments, s)
	}
	return uint8(v), nil
}

func parseCount(tokens []string, n int) (int, error) {
	if len(tokens) <= n {
		return 1, nil
	}
	c, err := strconv.Atoi(tokens[n])
	if err != nil || c < 1 {
		return 0, fmt.Errorf("%w: %s is not a count", ErrArguments, tokens[n])
	}
	return c, nil
}

// Command executes a single line of input. Errors are returned and not
// printed. An empty line is not an error and does nothing.
func (mon *Monitor) Command(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	default:
		return fmt.Errorf("monitor: %w: %s", ErrUnknownCommand, tokens[0])

	case KeywordHelp:
		if len(args) == 0 {
			mon.print("%s", strings.Join(Commands, " "))
			return nil
		}
		txt, ok := Help[strings.ToUpper(args[0])]
		if !ok {
			mon.print("no help for %s", args[0])
			return nil
		}
		mon.print("%s", txt)

	case KeywordPeek:
		if len(args) < 1 {
			return fmt.Errorf("monitor: %w: PEEK requires an address", ErrArguments)
		}
		count, err := parseCount(args, 1)
		if err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		ai, err := mon.peek(args[0])
		if err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		mon.print("%s", ai.String())
		for i := 1; i < count; i++ {
			ai, err = mon.peek(fmt.Sprintf("$%04x", ai.Address+1))
			if err != nil {
				return fmt.Errorf("monitor: %w", err)
			}
			mon.print("%s", ai.String())
		}

	case KeywordPoke:
		if len(args) < 2 {
			return fmt.Errorf("monitor: %w: POKE requires an address and a value", ErrArguments)
		}
		ai, err := mon.addressInfo(args[0])
		if err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		for i, a := range args[1:] {
			v, err := parseValue(a)
			if err != nil {
				return fmt.Errorf("monitor: %w", err)
			}
			p, err := mon.poke(fmt.Sprintf("$%04x", ai.Address+uint16(i)), v)
			if err != nil {
				return fmt.Errorf("monitor: %w", err)
			}
			mon.print("%s", p.String())
		}

	case KeywordLabel:
		if len(args) != 1 {
			return fmt.Errorf("monitor: %w: LABEL requires an address", ErrArguments)
		}
		a, err := mon.sym.Resolve(args[0])
		if err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		mon.print("%04x -> %s", a, mon.mirage.Mem.Namer().Name(a))

	case KeywordSymbol:
		if len(args) != 1 {
			return fmt.Errorf("monitor: %w: SYMBOL requires a name", ErrArguments)
		}
		r := mon.sym.Search(args[0], symbols.SearchAll)
		if r == nil {
			mon.print("%s -> not found", args[0])
			return nil
		}
		mon.print("%s -> %#04x (%s)", r.Symbol, r.Address, r.Table)

	case KeywordSymbols:
		mon.sym.List(mon.out)

	case KeywordMap:
		mon.print("%s", mon.mirage.Mem.Summary())

	case KeywordBank:
		if len(args) > 0 {
			b, err := strconv.Atoi(args[0])
			if err != nil || b < 0 || b >= addresses.NumBanks {
				return fmt.Errorf("monitor: %w: bank must be 0 to %d", ErrArguments, addresses.NumBanks-1)
			}
			mon.selectBank(uint8(b))
		}
		mon.print("bank %d", mon.mirage.Mem.CurrentBank())

	case KeywordVIA:
		mon.print("%s", mon.mirage.VIA.String())

	case KeywordFDC:
		mon.print("%s", mon.mirage.FDC.String())

	case KeywordCPU:
		if mon.mirage.CPU == nil {
			return fmt.Errorf("monitor: %w", hardware.ErrNoCPU)
		}
		mon.print("%s", mon.mirage.CPU.Registers().String())

	case KeywordStep:
		count, err := parseCount(args, 0)
		if err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		for i := 0; i < count; i++ {
			if err := mon.mirage.Step(); err != nil {
				return fmt.Errorf("monitor: %w", err)
			}
		}
		mon.print("%s", mon.mirage.CPU.Registers().String())

	case KeywordRun:
		var limit int
		if len(args) > 0 {
			var err error
			limit, err = parseCount(args, 0)
			if err != nil {
				return fmt.Errorf("monitor: %w", err)
			}
		}
		return mon.run(limit)

	case KeywordReset:
		if err := mon.mirage.Reset(); err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		mon.print("reset")

	case KeywordDebug:
		if len(args) > 0 {
			switch strings.ToUpper(args[0]) {
			case "ON":
				mon.mirage.Env.SetDebug(true)
			case "OFF":
				mon.mirage.Env.SetDebug(false)
			default:
				return fmt.Errorf("monitor: %w: DEBUG ON or DEBUG OFF", ErrArguments)
			}
		}
		if mon.mirage.Env.Debug() {
			mon.print("debug on")
		} else {
			mon.print("debug off")
		}

	case KeywordLog:
		if len(args) > 0 && strings.ToUpper(args[0]) == "CLEAR" {
			logger.Clear()
			return nil
		}
		if len(args) == 0 {
			logger.Write(mon.out)
			return nil
		}
		count, err := parseCount(args, 0)
		if err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		logger.Tail(mon.out, count)

	case KeywordFault:
		rep := mon.mirage.Diagnostics.LastFault()
		if rep == nil {
			mon.print("no fault")
			return nil
		}
		io.WriteString(mon.out, rep.String())

	case KeywordConsole:
		if mon.con == nil {
			mon.print("no console")
			return nil
		}
		for _, l := range mon.con.Lines() {
			mon.print("%s", l)
		}
		if p := mon.con.Pending(); p != "" {
			mon.print("%s", p)
		}

	case KeywordStruct:
		target := "MAP"
		if len(args) > 0 {
			target = strings.ToUpper(args[0])
		}
		switch target {
		case "MAP":
			mmap := mon.mirage.Mem.Map()
			memviz.Map(mon.out, &mmap)
		case "VIA":
			memviz.Map(mon.out, mon.mirage.VIA)
		case "FDC":
			memviz.Map(mon.out, mon.mirage.FDC)
		case "CPU":
			if mon.mirage.CPU == nil {
				return fmt.Errorf("monitor: %w", hardware.ErrNoCPU)
			}
			regs := mon.mirage.CPU.Registers()
			memviz.Map(mon.out, &regs)
		default:
			return fmt.Errorf("monitor: %w: STRUCT cannot show %s", ErrArguments, args[0])
		}

	case KeywordScript:
		if len(args) != 1 {
			return fmt.Errorf("monitor: %w: SCRIPT requires a filename", ErrArguments)
		}
		if err := mon.script().RunFile(args[0]); err != nil {
			return fmt.Errorf("monitor: %w", err)
		}

	case KeywordLua:
		if len(args) == 0 {
			return fmt.Errorf("monitor: %w: LUA requires a statement", ErrArguments)
		}
		src := strings.TrimSpace(input[len(tokens[0])+strings.Index(input, tokens[0]):])
		if err := mon.script().RunString(src); err != nil {
			return fmt.Errorf("monitor: %w", err)
		}

	case KeywordQuit:
		mon.quit = true
	}

	return nil
}

// selectBank drives the bank select bits of VIA port B. The bits are made
// outputs and the other bits of the port are left alone.
func (mon *Monitor) selectBank(bank uint8) {
	via := mon.mirage.VIA
	ddr := via.Peek(addresses.VIADDRB)
	via.WriteRegister(addresses.VIADDRB, ddr|addresses.BankMask)
	orb := via.Peek(addresses.BankRegister)
	via.WriteRegister(addresses.BankRegister, orb&^addresses.BankMask|bank)
}

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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/mirage09/mirage09/diagnostics"
	"github.com/mirage09/mirage09/hardware"
	"github.com/mirage09/mirage09/logger"
	"github.com/mirage09/mirage09/symbols"
	lua "github.com/yuin/gopher-lua"
)

const logTag = "script"

// Script is a Lua interpreter bound to a Mirage.
type Script struct {
	mirage *hardware.Mirage
	sym    *symbols.Symbols
	out    io.Writer

	L       *lua.LState
	onTrace *lua.LFunction

	// error raised by the most recent trace callback
	traceErr error

	// removes the trace observer from the Mirage diagnostics
	removeObserver func()
}

// NewScript is the preferred method of initialisation for the Script type.
// The interpreter is attached to the Mirage's trace events for its lifetime.
func NewScript(mirage *hardware.Mirage, sym *symbols.Symbols, out io.Writer) *Script {
	if out == nil {
		out = io.Discard
	}

	scr := &Script{
		mirage: mirage,
		sym:    sym,
		out:    out,
		L:      lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"peek":     scr.peek,
		"poke":     scr.poke,
		"read":     scr.read,
		"write":    scr.write,
		"label":    scr.label,
		"symbol":   scr.symbol,
		"bank":     scr.bank,
		"step":     scr.step,
		"on_trace": scr.setOnTrace,
		"print":    scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	scr.removeObserver = mirage.Diagnostics.AddObserver(scr.trace)

	return scr
}

// Close the interpreter and stop receiving trace events.
func (scr *Script) Close() {
	if scr.removeObserver != nil {
		scr.removeObserver()
		scr.removeObserver = nil
	}
	scr.onTrace = nil
	if scr.L != nil {
		scr.L.Close()
		scr.L = nil
	}
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, logTag, "running %s", filename)
	if err := scr.L.DoFile(filename); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return scr.TraceError()
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return scr.TraceError()
}

// TraceError returns and clears the error raised by the last trace callback.
func (scr *Script) TraceError() error {
	err := scr.traceErr
	scr.traceErr = nil
	return err
}

func (scr *Script) trace(ev diagnostics.TraceEvent) {
	if scr.onTrace == nil || scr.L == nil {
		return
	}

	t := scr.L.NewTable()
	t.RawSetString("kind", lua.LString(ev.Kind.String()))
	t.RawSetString("opcode", lua.LString(ev.Opcode))
	t.RawSetString("src", lua.LNumber(ev.Src))
	t.RawSetString("dst", lua.LNumber(ev.Dst))
	t.RawSetString("label", lua.LString(ev.Label))

	err := scr.L.CallByParam(lua.P{
		Fn:      scr.onTrace,
		NRet:    0,
		Protect: true,
	}, t)
	if err != nil {
		logger.Log(logger.Allow, logTag, err)
		scr.traceErr = fmt.Errorf("script: on_trace: %w", err)
		scr.onTrace = nil
	}
}

// address argument n is a number or a string that can be resolved by the
// symbols table
func (scr *Script) address(L *lua.LState, n int) uint16 {
	v := L.CheckAny(n)
	switch v := v.(type) {
	case lua.LNumber:
		if v < 0 || v > 0xffff {
			L.ArgError(n, "address out of range")
		}
		return uint16(v)
	case lua.LString:
		a, err := scr.sym.Resolve(string(v))
		if err != nil {
			L.ArgError(n, err.Error())
		}
		return a
	}
	L.ArgError(n, "address must be a number or a string")
	return 0
}

func value(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.mirage.Mem.Peek(scr.address(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	err := scr.mirage.Mem.Poke(scr.address(L, 1), value(L, 2))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) read(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mirage.Mem.Read(scr.address(L, 1))))
	return 1
}

func (scr *Script) write(L *lua.LState) int {
	scr.mirage.Mem.Write(scr.address(L, 1), value(L, 2))
	return 0
}

func (scr *Script) label(L *lua.LState) int {
	L.Push(lua.LString(scr.mirage.Mem.Namer().Name(scr.address(L, 1))))
	return 1
}

func (scr *Script) symbol(L *lua.LState) int {
	r := scr.sym.Search(L.CheckString(1), symbols.SearchAll)
	if r == nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(r.Address))
	return 1
}

func (scr *Script) bank(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mirage.Mem.CurrentBank()))
	return 1
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for i := 0; i < n; i++ {
		if err := scr.mirage.Step(); err != nil {
			L.RaiseError("%v", err)
		}
	}
	return 0
}

func (scr *Script) setOnTrace(L *lua.LState) int {
	if L.Get(1) == lua.LNil {
		scr.onTrace = nil
		return 0
	}
	scr.onTrace = L.CheckFunction(1)
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.out, strings.Join(s, "\t"))
	return 0
}

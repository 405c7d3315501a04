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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mirage09/mirage09/console"
	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/hardware"
	"github.com/mirage09/mirage09/hardware/memory/memorymap"
	"github.com/mirage09/mirage09/hardware/memory/wav"
	"github.com/mirage09/mirage09/hardware/preferences"
	"github.com/mirage09/mirage09/logger"
	"github.com/mirage09/mirage09/modalflag"
	"github.com/mirage09/mirage09/monitor"
	"github.com/mirage09/mirage09/paths"
	"github.com/mirage09/mirage09/romloader"
	"github.com/mirage09/mirage09/samples"
	"github.com/mirage09/mirage09/statsview"
	"github.com/mirage09/mirage09/symbols"
	"github.com/mirage09/mirage09/version"
)

const preferencesFile = "preferences"

// errBankSize is returned when a bank image is bigger than a WAV RAM bank.
var errBankSize = errors.New("image is bigger than a WAV RAM bank")

// exit codes
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("MONITOR", "MAP", "LABEL", "ROMINFO", "SAMPLES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "MONITOR":
		err = runMonitor(md)
	case "MAP":
		err = showMap(md)
	case "LABEL":
		err = label(md)
	case "ROMINFO":
		err = romInfo(md)
	case "SAMPLES":
		err = sampleFiles(md)
	case "VERSION":
		fmt.Fprintln(output, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// newEnvironment creates an environment with preferences loaded from the
// resource directory.
func newEnvironment() (*environment.Environment, error) {
	pth, err := paths.ResourcePath("", preferencesFile)
	if err != nil {
		return nil, err
	}

	prefs, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	return environment.NewEnvironment(prefs)
}

func runMonitor(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is the ROM image. Images can be inside a 7z archive.")

	cart := md.AddString("cart", "", "cartridge image")
	debug := md.AddBool("debug", false, "log every bus access and branch")
	echo := md.AddBool("log", false, "echo log to stdout")
	depth := md.AddInt("stack", preferences.DefaultStackDepth, "number of bytes shown by fault reports")
	serial := md.AddString("serial", "", "host serial device for the ACIA")
	baud := md.AddInt("baud", console.DefaultBaud, "speed of the host serial device")
	initScript := md.AddString("script", "", "Lua script to run before the prompt")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available=%v)", statsview.Available()))
	save := md.AddBool("saveprefs", false, "save preferences on exit")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	env, err := newEnvironment()
	if err != nil {
		return err
	}

	env.Prefs.EchoOutput = os.Stdout
	if err := monitorPrefs(md, env, debug, echo, depth); err != nil {
		return err
	}

	if *stats {
		stop := statsview.Launch(md.Output, "")
		defer stop()
	}

	m, err := hardware.NewMirage(env)
	if err != nil {
		return err
	}
	m.Diagnostics.SetOutput(md.Output)

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		ld := romloader.NewLoader(md.GetArg(0), m.Mem.Map().ROM.Size())
		if err := ld.Load(); err != nil {
			return err
		}
		if err := m.AttachROM(ld.Data); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "mirage09", "ROM %s (%s)", ld.ShortName(), ld.Hash)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *cart != "" {
		ld := romloader.NewLoader(*cart, 0)
		if err := ld.Load(); err != nil {
			return err
		}
		if err := m.Mem.AttachCartridge(ld.Data); err != nil {
			return err
		}
		if err := env.Prefs.CartridgeEnabled.Set(true); err != nil {
			return err
		}
	}

	con := console.NewConsole(nil)
	var ser *console.Serial
	if *serial != "" {
		ser, err = console.OpenSerial(*serial, *baud)
		if err != nil {
			return err
		}
		defer ser.Close()
	}
	m.Mem.Devices.AttachConsole(console.Tee(con, ser))

	mon := monitor.NewMonitor(m, md.Output)
	defer mon.Close()
	mon.AttachConsole(con)

	if *initScript != "" {
		if err := mon.Command(fmt.Sprintf("%s %s", monitor.KeywordScript, *initScript)); err != nil {
			return err
		}
	}

	if err := mon.Run(os.Stdin, os.Stdout); err != nil {
		return err
	}

	if *save {
		return env.Prefs.Save()
	}

	return nil
}

func showMap(md *modalflag.Modes) error {
	md.NewMode()
	sym := md.AddBool("symbols", false, "list entry points and variables")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	io.WriteString(md.Output, memorymap.Default().Summary())
	if *sym {
		io.WriteString(md.Output, "\n")
		symbols.NewSymbols().List(md.Output)
	}

	return nil
}

func label(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Arguments are hexadecimal addresses or symbols.")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("%s mode requires at least one address", md)
	}

	sym := symbols.NewSymbols()
	for _, a := range md.RemainingArgs() {
		addr, err := sym.Resolve(a)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "%04x -> %s\n", addr, symbols.Name(addr))
	}

	return nil
}

func romInfo(md *modalflag.Modes) error {
	md.NewMode()
	hash := md.AddString("hash", "", "expected fingerprint of the image")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires one ROM image", md)
	}

	ld := romloader.NewLoader(md.GetArg(0), 0)
	ld.Hash = *hash
	if err := ld.Load(); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "name: %s\n", ld.ShortName())
	if ld.Archived != "" {
		fmt.Fprintf(md.Output, "archived: %s\n", ld.Archived)
	}
	fmt.Fprintf(md.Output, "size: %d bytes\n", len(ld.Data))
	fmt.Fprintf(md.Output, "fingerprint: %s\n", ld.Hash)

	if len(ld.Data) != memorymap.Default().ROM.Size() {
		fmt.Fprintf(md.Output, "not a ROM image (should be %d bytes)\n", memorymap.Default().ROM.Size())
		return nil
	}

	// the vectors are the last 16 bytes of the ROM, big endian
	vectors := []string{"reserved", "SWI3", "SWI2", "FIRQ", "IRQ", "SWI", "NMI", "RESET"}
	base := len(ld.Data) - len(vectors)*2
	for i, v := range vectors {
		a := uint16(ld.Data[base+i*2])<<8 | uint16(ld.Data[base+i*2+1])
		fmt.Fprintf(md.Output, "%-8s %04x %s\n", v, a, symbols.Name(a))
	}

	return nil
}

// monitorPrefs applies the preference flags given on the command line. The
// values loaded from the preferences file are kept for flags that were not
// given.
func monitorPrefs(md *modalflag.Modes, env *environment.Environment, debug *bool, echo *bool, depth *int) error {
	// the loaded echo value was applied before EchoOutput was set
	if err := env.Prefs.EchoLog.Set(env.Prefs.EchoLog.Get()); err != nil {
		return err
	}

	var err error
	md.Visit(func(name string) {
		if err != nil {
			return
		}
		switch name {
		case "debug":
			err = env.Prefs.Debug.Set(*debug)
		case "log":
			err = env.Prefs.EchoLog.Set(*echo)
		case "stack":
			err = env.Prefs.StackDepth.Set(*depth)
		}
	})

	return err
}

func sampleFiles(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("IMPORT", "EXPORT", "PLOT")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	md.NewMode()
	rate := md.AddInt("rate", samples.DefaultSampleRate, "sample rate")

	switch md.Mode() {
	case "IMPORT":
		md.AdditionalHelp("Convert a WAV or MP3 file to a WAV RAM bank image.\nArguments: audio file, bank image")
	case "EXPORT":
		md.AdditionalHelp("Convert a WAV RAM bank image to a WAV file.\nArguments: bank image, [audio file]")
	case "PLOT":
		md.AdditionalHelp("Plot a WAV RAM bank image or audio file as PNG.\nArguments: image or audio file, [png file]")
	}

	p, err = md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) < 1 || len(md.RemainingArgs()) > 2 {
		return fmt.Errorf("wrong number of arguments for %s mode", md)
	}
	in := md.GetArg(0)
	out := md.GetArg(1)

	env, err := environment.NewEnvironment(nil)
	if err != nil {
		return err
	}

	w := wav.NewWAV(env.Prefs, memorymap.Default().WAV.Size())

	switch md.Mode() {
	case "IMPORT":
		if out == "" {
			return fmt.Errorf("%s mode requires an output file", md)
		}
		n, err := samples.Import(env, in, w, 0, float64(*rate))
		if err != nil {
			return err
		}
		data, err := w.Bank(0)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data[:n], 0o644); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "%d bytes written to %s\n", n, out)

	case "EXPORT":
		if _, err := loadBank(w, in); err != nil {
			return err
		}
		if out == "" {
			out = paths.UniqueFilename("bank", shortName(in), "wav")
		}
		if err := samples.Export(out, w, 0, *rate); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "exported to %s\n", out)

	case "PLOT":
		data, err := plotData(env, w, in)
		if err != nil {
			return err
		}

		if out == "" {
			out = paths.UniqueFilename("plot", shortName(in), "png")
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := samples.Plot(f, filepath.Base(in), data); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "plotted to %s\n", out)
	}

	return nil
}

// loadBank loads a raw bank image into bank zero. images shorter than the
// bank are allowed
// loadBank loads a bank image into bank zero and returns the length of the
// image.
func loadBank(w *wav.WAV, filename string) (int, error) {
	ld := romloader.NewLoader(filename, 0)
	if err := ld.Load(); err != nil {
		return 0, err
	}
	if len(ld.Data) > w.Size() {
		return 0, fmt.Errorf("%s: %w", filename, errBankSize)
	}
	return len(ld.Data), w.Load(0, ld.Data)
}

// plotData returns the sample data in an audio file or bank image. The unused
// part of the bank is not included.
func plotData(env *environment.Environment, w *wav.WAV, filename string) ([]uint8, error) {
	var n int
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav", ".mp3":
		n, err = samples.Import(env, filename, w, 0, 0)
	default:
		n, err = loadBank(w, filename)
	}
	if err != nil {
		return nil, err
	}

	data, err := w.Bank(0)
	if err != nil {
		return nil, err
	}

	return data[:n], nil
}

func shortName(filename string) string {
	return romloader.NewLoader(filename, 0).ShortName()
}

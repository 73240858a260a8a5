// This file is part of Emu6502Console.
//
// Emu6502Console is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emu6502Console is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emu6502Console.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/drewwalton19216801/Emu6502Console/debugger"
	"github.com/drewwalton19216801/Emu6502Console/debugger/terminal/plainterm"
	"github.com/drewwalton19216801/Emu6502Console/digest"
	"github.com/drewwalton19216801/Emu6502Console/disassembly"
	"github.com/drewwalton19216801/Emu6502Console/hardware"
	"github.com/drewwalton19216801/Emu6502Console/logger"
	"github.com/drewwalton19216801/Emu6502Console/modalflag"
	"github.com/drewwalton19216801/Emu6502Console/performance"
	"github.com/drewwalton19216801/Emu6502Console/performance/limiter"
	"github.com/drewwalton19216801/Emu6502Console/prefs"
	"github.com/drewwalton19216801/Emu6502Console/remote"
	"github.com/drewwalton19216801/Emu6502Console/script"
	"github.com/drewwalton19216801/Emu6502Console/statsview"
	"github.com/drewwalton19216801/Emu6502Console/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch the program with the arguments. returns the exit value.
func launch(args []string, in io.Reader, out io.Writer) int {
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)
	md.AddSubModes("STEP", "RUN", "DISASM", "SERVE", "SCRIPT", "PERFORMANCE", "EEPROM", "VERSION")

	cmdlinePrefs := md.AddString("prefs", "", "preferences for this session. eg. \"cpu.unknownOpcode::SKIP; loader.baseAddress::0x0600\"")
	stats := md.AddBool("statsview", false, "run the runtime statistics server")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(out, "* error: %v\n", err)
		return 10
	}

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
		defer func() {
			if s := prefs.PopCommandLineStack(); s != "" {
				fmt.Fprintf(out, "! unused preferences: %s\n", s)
			}
		}()
	}

	if *log {
		logger.SetEcho(out)
	}

	if *stats {
		err = statsview.Launch(out, statsview.DefaultAddress)
		if err != nil {
			fmt.Fprintf(out, "* %v\n", err)
		}
	}

	switch md.Mode() {
	case "STEP":
		err = step(md, in, out)
	case "RUN":
		err = run(md, out)
	case "DISASM":
		err = disasm(md, out)
	case "SERVE":
		err = serve(md)
	case "SCRIPT":
		err = runScript(md, out)
	case "PERFORMANCE":
		err = perform(md, out)
	case "EEPROM":
		err = eeprom(md, out)
	case "VERSION":
		v, r, _ := version.Version()
		fmt.Fprintf(out, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Fprintf(out, "* error in %s mode: %v\n", md, err)
		return 20
	}

	return 0
}

// newMachine creates a machine and loads the EEPROM image from disk.
func newMachine() (*hardware.Machine, error) {
	m, err := hardware.NewMachine(nil)
	if err != nil {
		return nil, err
	}
	m.LoadEEPROMFile()
	return m, nil
}

// loadProgram loads the program into the machine. if indirect is true then the
// PC is loaded from the reset vector after the program has been loaded.
func loadProgram(m *hardware.Machine, filename string, base *uint16, indirect bool) error {
	ld := m.NewLoader(filename)
	if base != nil {
		ld.BaseAddress = *base
		ld.HeaderAddress = false
	}

	err := m.Load(ld)
	if err != nil {
		return err
	}

	if indirect {
		m.CPU.LoadPCIndirect(uint16(m.Prefs.ResetVector.Get().(int)))
	}

	return nil
}

// returns a pointer to the address if the named flag has been set. nil
// otherwise.
func setAddress(md *modalflag.Modes, name string, address *uint16) *uint16 {
	var set bool
	md.Visit(func(f string) {
		set = set || f == name
	})
	if set {
		return address
	}
	return nil
}

func step(md *modalflag.Modes, in io.Reader, out io.Writer) error {
	md.NewMode()

	base := md.AddAddress("base", 0, "load address of program (overrides preferences)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := newMachine()
	if err != nil {
		return err
	}

	if b := setAddress(md, "base", base); b != nil {
		err = m.Prefs.BaseAddress.Set(int(*b))
		if err != nil {
			return err
		}
	}

	dbg, err := debugger.NewDebugger(m, plainterm.NewPlainTerminal(in, out))
	if err != nil {
		return err
	}

	// ctrl-c is handled by the terminal
	signal.Ignore(os.Interrupt)
	defer signal.Reset(os.Interrupt)

	return dbg.Start(filename)
}

func run(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	base := md.AddAddress("base", 0, "load address of program (overrides preferences)")
	indirect := md.AddBool("indirect", false, "start from the address stored at the reset vector")
	cycles := md.AddInt("cycles", 0, "number of cycles to run for. zero runs until an error or interrupt")
	hz := md.AddInt("hz", 0, "limit the clock rate in hertz. zero is unlimited")
	profile := md.AddString("profile", "none", "generate profile: CPU, MEM, TRACE, ALL (comma separated)")
	dig := md.AddBool("digest", false, "print a digest of the execution and final memory state")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one program file required for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine()
	if err != nil {
		return err
	}

	err = loadProgram(m, md.GetArg(0), setAddress(md, "base", base), *indirect)
	if err != nil {
		return err
	}

	var lim *limiter.Limiter
	if *hz > 0 {
		lim, err = limiter.NewLimiter(*hz)
		if err != nil {
			return err
		}
		defer lim.Stop()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var ex *digest.Execution
	if *dig {
		ex = digest.NewExecution(m)
	}

	var used int
	var interrupted bool
	performanceBrake := 0

	err = performance.RunProfiler(prf, "run", func() error {
		var counted int
		var err error
		used, err = m.Run(func() (bool, error) {
			c := m.CPU.LastResult.Cycles
			if ex != nil {
				ex.Update()
			}
			if lim != nil {
				lim.Consume(c)
			}

			counted += c
			if *cycles > 0 && counted >= *cycles {
				return false, nil
			}

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-intChan:
					interrupted = true
					return false, nil
				default:
				}
			}

			return true, nil
		})
		return err
	})

	if interrupted {
		fmt.Fprintln(out, "interrupted")
	}
	fmt.Fprintf(out, "%d cycles used\n", used)
	fmt.Fprintln(out, m.Status())
	if ex != nil {
		fmt.Fprintf(out, "digest: %s\n", ex.Hash())
	}

	return err
}

func disasm(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	base := md.AddAddress("base", 0, "load address of program (overrides preferences)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one program file required for %s mode", md)
	}

	m, err := hardware.NewMachine(nil)
	if err != nil {
		return err
	}

	err = loadProgram(m, md.GetArg(0), setAddress(md, "base", base), false)
	if err != nil {
		return err
	}

	origin, data := m.Loader.Origin()
	end := int(origin) + len(data)

	var entries []disassembly.Entry
	for address := int(origin); address < end; {
		e, _ := disassembly.Disassemble(m.Mem, uint16(address))
		entries = append(entries, e)
		address += e.Result.ByteCount
	}

	return disassembly.Write(out, disassembly.WriteAttr{ByteCode: *bytecode, Cycles: *cycles}, entries)
}

func serve(md *modalflag.Modes) error {
	md.NewMode()

	tcp := md.AddString("tcp", "127.0.0.1:6502", "address for TCP connections. empty to disable")
	ws := md.AddString("ws", "", "address for websocket connections. empty to disable")
	base := md.AddAddress("base", 0, "load address of program (overrides preferences)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *tcp == "" && *ws == "" {
		return fmt.Errorf("no address to serve for %s mode", md)
	}

	m, err := newMachine()
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		err = loadProgram(m, md.GetArg(0), setAddress(md, "base", base), false)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	srv, err := remote.NewServer(m)
	if err != nil {
		return err
	}

	errs := make(chan error, 2)
	if *tcp != "" {
		go func() {
			errs <- srv.ListenAndServeTCP(*tcp)
		}()
	}
	if *ws != "" {
		go func() {
			errs <- srv.ListenAndServeWebsocket(*ws)
		}()
	}

	return <-errs
}

func runScript(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	base := md.AddAddress("base", 0, "load address of program (overrides preferences)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine()
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
	case 2:
		err = loadProgram(m, md.GetArg(1), setAddress(md, "base", base), false)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	scr, err := script.NewScript(m, out)
	if err != nil {
		return err
	}
	defer scr.Close()

	return scr.RunFile(md.GetArg(0))
}

func perform(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	base := md.AddAddress("base", 0, "load address of program (overrides preferences)")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "generate profile: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one program file required for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine()
	if err != nil {
		return err
	}

	err = loadProgram(m, md.GetArg(0), setAddress(md, "base", base), false)
	if err != nil {
		return err
	}

	return performance.Check(out, m, prf, *duration)
}

func eeprom(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	base := md.AddAddress("base", 0, "address in the eeprom to write the program to")
	md.AdditionalHelp("The program is written to the eeprom image, which is then saved to disk.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one program file required for %s mode", md)
	}

	m, err := newMachine()
	if err != nil {
		return err
	}

	ld := m.NewLoader(md.GetArg(0))
	if b := setAddress(md, "base", base); b != nil {
		ld.BaseAddress = *b
		ld.HeaderAddress = false
	}

	err = m.LoadEEPROM(ld)
	if err != nil {
		return err
	}

	err = m.EEPROM.Save()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s written to %s\n", ld, m.EEPROM.Filename)
	return nil
}

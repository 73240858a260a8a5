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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const modeSeparator = "/"

// Modes handles the command line arguments for a program with modes. The
// Output field should be set before Parse() is called or help messages will
// not be seen.
type Modes struct {
	Output io.Writer

	// flags for the current mode. a new flagset is created by NewMode()
	flags *flag.FlagSet

	// arguments as given to NewArgs(). idx is the index of the first
	// argument for the current mode
	args []string
	idx  int

	// sub-modes for the current mode. the first entry is the default
	subModes []string

	// the modes selected by the calls to Parse() so far
	path []string

	// extra text printed after the flag and sub-mode help
	additionalHelp string

	parsed bool
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed. The Modes instance starts a new
// mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that the remaining arguments belong to a new mode. Flags
// and sub-modes declared for the previous mode are forgotten.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp sets text to be printed with the help for the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called for the current mode, even
// if the call resulted in an error.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with the program. if sub-modes were declared then Mode()
	// returns the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been printed to the Output writer
	ParseHelp

	// the arguments could not be parsed. the error is returned alongside
	// this value
	ParseError
)

// Parse the arguments for the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.idx:])
	if err != nil {
		if err == flag.ErrHelp {
			if md.Output != nil {
				hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			}
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// flags consumed by this mode
	md.idx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.idx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or the sub-mode
// selector. Only valid after Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args[md.idx:]
}

// GetArg returns the numbered argument from the RemainingArgs() list. Returns
// the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddSubModes adds to the list of sub-modes for the current mode. The first
// sub-mode is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddDefaultSubMode adds a sub-mode to the front of the list, making it the
// default.
func (md *Modes) AddDefaultSubMode(defSubMode string) {
	md.subModes = append([]string{strings.ToUpper(defSubMode)}, md.subModes...)
}

// AddBool flag for the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddAddress flag for the current mode. The flag value is a 16bit address
// given in decimal, or in hex with either the 0x or $ prefix.
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	a := &address{v: value}
	md.flags.Var(a, name, usage)
	return &a.v
}

// Visit calls fn for each flag that has been set in the current mode.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// address implements the flag.Value interface.
type address struct {
	v uint16
}

func (a *address) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%#04x", a.v)
}

func (a *address) Set(s string) error {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("invalid address (%s)", s)
	}
	a.v = uint16(v)
	return nil
}

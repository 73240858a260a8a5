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

package logger_test

import (
	"errors"
	"testing"

	"github.com/drewwalton19216801/Emu6502Console/logger"
	"github.com/drewwalton19216801/Emu6502Console/test"
)

type prohibit struct{}

func (_ prohibit) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	tw := &test.CompareWriter{}

	log := logger.NewLogger(100)

	log.Write(tw)
	test.ExpectEquality(t, tw.Compare(""), true)

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	log.Tail(tw, 2)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test\n")

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")

	// repeated entries are collapsed
	tw.Clear()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test (repeat x2)\n")
	test.ExpectEquality(t, log.Len(), 2)

	// errors are logged using their Error() string
	tw.Clear()
	log.Log(logger.Allow, "cpu", errors.New("unrecognised opcode"))
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "cpu: unrecognised opcode\n")

	// formatted entries
	tw.Clear()
	log.Logf(logger.Allow, "mem", "poke %#04x", 0x200)
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "mem: poke 0x0200\n")

	// prohibited entries are not added
	tw.Clear()
	log.Log(prohibit{}, "test", "should not appear")
	log.Log(logger.Deny, "test", "should not appear")
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "mem: poke 0x0200\n")

	log.Clear()
	test.ExpectEquality(t, log.Len(), 0)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	log.Log(logger.Allow, "a", 1)
	log.Log(logger.Allow, "b", 2)
	log.Log(logger.Allow, "c", 3)
	test.ExpectEquality(t, log.Len(), 2)

	tw := &test.CompareWriter{}
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "b: 2\nc: 3\n")
}

func TestEcho(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(10)
	log.SetEcho(tw)
	log.Log(logger.Allow, "echo", "hello")
	test.ExpectEquality(t, tw.String(), "echo: hello\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "silent")
	test.ExpectEquality(t, tw.String(), "echo: hello\n")
}

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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
	Notes    bool
}

// widths of each column. updated for every entry to be written.
type widths struct {
	address  int
	bytecode int
	operator int
	operand  int
	cycles   int
}

func (w *widths) update(e Entry) {
	w.address = max(w.address, len(e.Address))
	w.bytecode = max(w.bytecode, len(e.Bytecode))
	w.operator = max(w.operator, len(e.Operator))
	w.operand = max(w.operand, len(e.Operand))
	w.cycles = max(w.cycles, len(e.Cycles()))
}

// Write the entries to io.Writer, one entry per line in columns.
func Write(output io.Writer, attr WriteAttr, entries []Entry) error {
	var w widths
	for _, e := range entries {
		w.update(e)
	}

	for _, e := range entries {
		if err := writeLine(output, attr, w, e); err != nil {
			return err
		}
	}

	return nil
}

func writeLine(output io.Writer, attr WriteAttr, w widths, e Entry) error {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%-*s", w.address, e.Address))

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("  %-*s", w.bytecode, e.Bytecode))
	}

	s.WriteString(fmt.Sprintf("  %-*s %-*s", w.operator, e.Operator, w.operand, e.Operand))

	if attr.Cycles {
		s.WriteString(fmt.Sprintf("  %-*s", w.cycles, e.Cycles()))
	}

	if attr.Notes {
		if n := e.Notes(); n != "" {
			s.WriteString("  ")
			s.WriteString(n)
		}
	}

	_, err := io.WriteString(output, strings.TrimRight(s.String(), " ")+"\n")
	return err
}

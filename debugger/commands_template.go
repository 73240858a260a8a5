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

package debugger

// debugger keywords
const (
	cmdStep     = "STEP"
	cmdRun      = "RUN"
	cmdRegs     = "REGS"
	cmdLast     = "LAST"
	cmdPeek     = "PEEK"
	cmdPoke     = "POKE"
	cmdReset    = "RESET"
	cmdLoad     = "LOAD"
	cmdDisasm   = "DISASM"
	cmdEEPROM   = "EEPROM"
	cmdSave     = "SAVE"
	cmdSnapshot = "SNAPSHOT"
	cmdRestore  = "RESTORE"
	cmdPolicy   = "POLICY"
	cmdPrefs    = "PREFS"
	cmdMemviz   = "MEMVIZ"
	cmdLog      = "LOG"
	cmdKeys     = "KEYS"
	cmdHelp     = "HELP"
	cmdQuit     = "QUIT"
)

// commandTemplate lists the commands in the order they are shown by HELP.
// each entry is the command followed by its arguments.
var commandTemplate = []string{
	cmdStep + " [n]",
	cmdRun + " <cycles>",
	cmdRegs,
	cmdLast,
	cmdPeek + " <address> [n]",
	cmdPoke + " <address> <value> [value...]",
	cmdReset + " [vector]",
	cmdLoad + " <filename> [address]",
	cmdDisasm + " [address] [n]",
	cmdEEPROM + " <address> [n]",
	cmdSave,
	cmdSnapshot,
	cmdRestore,
	cmdPolicy + " [HALT|SKIP]",
	cmdPrefs + " [SAVE]",
	cmdMemviz + " <filename>",
	cmdLog + " [n]",
	cmdKeys,
	cmdHelp,
	cmdQuit,
}

var helps = map[string]string{
	cmdStep:     "Execute the next instruction, or the next n instructions",
	cmdRun:      "Execute instructions until at least the number of cycles have been consumed",
	cmdRegs:     "Display the CPU registers and status flags",
	cmdLast:     "Display the result of the last instruction",
	cmdPeek:     "Inspect memory, starting at the address",
	cmdPoke:     "Modify memory, starting at the address",
	cmdReset:    "Reset the machine and reload the current program. Optionally, set the PC to the vector",
	cmdLoad:     "Load a program into memory. Address defaults to the loader.baseAddress preference",
	cmdDisasm:   "Disassemble memory, starting at the address or at the PC",
	cmdEEPROM:   "Inspect the EEPROM, starting at the address",
	cmdSave:     "Save the EEPROM to disk",
	cmdSnapshot: "Take a snapshot of the machine",
	cmdRestore:  "Restore the machine to the most recent snapshot",
	cmdPolicy:   "Show or set how the CPU reacts to an unrecognised opcode",
	cmdPrefs:    "Show the current preferences, or save them to disk",
	cmdMemviz:   "Write a graphviz representation of the CPU registers and last result to file",
	cmdLog:      "Print the most recent log entries",
	cmdKeys:     "Return to key step mode (space or return to step, ':' or escape for the command line)",
	cmdHelp:     "List the available commands",
	cmdQuit:     "Exit the debugger",
}

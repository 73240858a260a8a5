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

package cpu

// Sentinel error patterns returned by the CPU. Test for them with curated.Is()
// or curated.Has().
const (
	UnrecognisedOpcode = "cpu: unrecognised opcode (%#02x) at (%#04x)"
	UnsupportedDecimal = "cpu: decimal mode unsupported for %s at (%#04x)"
)

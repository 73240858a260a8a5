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

// branch adds the signed offset to the PC if flag is true. a taken branch
// costs one extra cycle and a second extra cycle if the new PC is in a
// different page to the PC after the offset byte
//
// +0, +1 or +2 cycles
func (mc *CPU) branch(flag bool, offset uint8) error {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return nil
	}

	// +1 cycle
	err := mc.cycle()
	if err != nil {
		return err
	}

	oldPC := mc.PC.Address()
	mc.PC.Add(uint16(int16(int8(offset))))

	if pageCrossed(oldPC, mc.PC.Address()) {
		mc.LastResult.PageFault = true

		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}
	}

	return nil
}

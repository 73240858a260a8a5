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

package hardware

import (
	"github.com/drewwalton19216801/Emu6502Console/hardware/cpu/execution"
)

// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. The
// continueCheck() function is called at the end of every instruction which
// can make a full check expensive. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Step the machine forward one instruction. The cycleCallback is called after
// every CPU cycle and can be nil.
//
// The result of the instruction is returned even if an error occurred.
func (m *Machine) Step(cycleCallback func() error) (execution.Result, error) {
	err := m.CPU.ExecuteInstruction(cycleCallback)
	return m.CPU.LastResult, err
}

// Execute runs instructions until at least the requested number of cycles
// have been consumed. See cpu.Execute() for details.
func (m *Machine) Execute(cycles int) (int, error) {
	return m.CPU.Execute(cycles)
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and the emulation stops when it
// returns false or an error. A nil continueCheck will cause the emulation to
// run until an error occurs.
//
// Returns the number of cycles consumed.
func (m *Machine) Run(continueCheck func() (bool, error)) (int, error) {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	var cycles int

	for {
		err := m.CPU.ExecuteInstruction(nil)
		cycles += m.CPU.LastResult.Cycles
		if err != nil {
			return cycles, err
		}

		ok, err := continueCheck()
		if err != nil {
			return cycles, err
		}
		if !ok {
			return cycles, nil
		}
	}
}

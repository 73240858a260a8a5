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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/hardware"
)

// PerformanceError is the sentinel pattern for errors returned by the package.
const PerformanceError = "performance: %v"

// sentinel error returned by the Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator by running the machine for the
// duration. The machine should already have a program loaded.
//
// The number of cycles executed and the effective clock rate are written to
// output. An error from the machine, for example an unrecognised opcode, ends
// the check early. In that case the figures are still written before the error
// is returned.
func Check(output io.Writer, m *hardware.Machine, profile Profile, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	var cycles int
	var elapsed time.Duration

	runner := func() error {
		timesUp := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timesUp <- true
		})

		// only check the timer every PerformanceBrake instructions
		performanceBrake := 0

		startTime := time.Now()
		defer func() {
			elapsed = time.Since(startTime)
		}()

		var err error
		cycles, err = m.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timesUp:
					return false, timedOut
				default:
				}
			}
			return true, nil
		})
		return err
	}

	err = RunProfiler(profile, "performance", runner)

	mhz := CalcMHz(cycles, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds)\n", mhz, cycles, elapsed.Seconds())

	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}
	return nil
}

// CalcMHz returns the clock rate in megahertz for the number of cycles
// executed in the number of seconds.
func CalcMHz(cycles int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(cycles) / seconds / 1000000
}

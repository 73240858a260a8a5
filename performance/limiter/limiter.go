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

// Package limiter restricts the rate at which the emulated CPU consumes
// cycles, so that a program can be run at something like the speed of real
// hardware. For example, to run at 1MHz:
//
//	lim, _ := limiter.NewLimiter(1000000)
//	defer lim.Stop()
//
//	for {
//		res, _ := m.Step(nil)
//		lim.Consume(res.Cycles)
//	}
//
// The limiter is rough and ready. Time is divided into slices of
// TickDuration and each slice has an allowance of cycles. Once the allowance
// has been used Consume() blocks until the start of the next slice.
package limiter

import (
	"time"

	"github.com/drewwalton19216801/Emu6502Console/curated"
)

// LimiterError is the sentinel pattern for errors returned by the package.
const LimiterError = "limiter: %v"

// TickDuration is the length of each time slice.
const TickDuration = 10 * time.Millisecond

// Limiter blocks when the number of cycles consumed exceeds the clock rate.
type Limiter struct {
	hz int

	// cycles allowed in each time slice and the number still available in
	// the current slice
	allowance int
	remaining int

	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The clock rate is given in hertz.
func NewLimiter(hz int) (*Limiter, error) {
	if hz <= 0 {
		return nil, curated.Errorf(LimiterError, "clock rate must be positive")
	}

	lim := &Limiter{
		hz:        hz,
		allowance: max(1, hz/int(time.Second/TickDuration)),
		ticker:    time.NewTicker(TickDuration),
	}
	lim.remaining = lim.allowance

	return lim, nil
}

// Rate returns the clock rate of the limiter in hertz.
func (lim *Limiter) Rate() int {
	return lim.hz
}

// Consume the number of cycles, blocking if the allowance for the current time
// slice has been used.
func (lim *Limiter) Consume(cycles int) {
	lim.remaining -= cycles
	for lim.remaining <= 0 {
		<-lim.ticker.C
		lim.remaining += lim.allowance
	}
}

// Stop the limiter. Consume() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}

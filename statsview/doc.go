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

// Package statsview launches a local HTTP server showing runtime statistics
// for the emulator process. The server is only available when the program is
// built with the statsview build tag:
//
//	go build -tags statsview
//
// Without the tag, Launch() reports that the server is unavailable.
//
// Statistics are drawn by github.com/go-echarts/statsview and can be viewed
// at:
//
//	localhost:12650/debug/statsview
//
// The standard pprof pages are at:
//
//	localhost:12650/debug/pprof/
package statsview

// DefaultAddress is the address the server listens on if Launch() is given an
// empty address.
const DefaultAddress = "localhost:12650"

const path = "/debug/statsview"

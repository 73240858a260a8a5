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
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/drewwalton19216801/Emu6502Console/curated"
)

// Profile specifies which profiles are to be generated by RunProfiler().
// Values can be combined.
type Profile int

// List of valid Profile values.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfile converts a comma separated list of profile names to a Profile
// value. Valid names are NONE, CPU, MEM, TRACE and ALL.
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, n := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(n)) {
		case "NONE", "":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(PerformanceError, fmt.Sprintf("unknown profile type (%s)", n))
		}
	}
	return p, nil
}

// RunProfiler runs the function, generating the profiles specified. Profiles
// are written to files named with the prefix and the profile type. For
// example, "run_cpu.profile".
func RunProfiler(profile Profile, prefix string, run func() error) (rerr error) {
	create := func(kind string) (*os.File, error) {
		f, err := os.Create(fmt.Sprintf("%s_%s.profile", prefix, kind))
		if err != nil {
			return nil, curated.Errorf(PerformanceError, err)
		}
		return f, nil
	}

	closeFile := func(f *os.File) {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(PerformanceError, err)
		}
	}

	if profile&ProfileCPU == ProfileCPU {
		f, err := create("cpu")
		if err != nil {
			return err
		}
		defer closeFile(f)

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := create("trace")
		if err != nil {
			return err
		}
		defer closeFile(f)

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		defer trace.Stop()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := create("mem")
		if err != nil {
			return err
		}
		defer closeFile(f)

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
	}

	return nil
}

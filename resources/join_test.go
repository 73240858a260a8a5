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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drewwalton19216801/Emu6502Console/resources"
	"github.com/drewwalton19216801/Emu6502Console/test"
)

func TestJoinPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	p, err := resources.JoinPath("sub", "file.bin")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, filepath.Base(p), "file.bin")

	// parent directory has been created but the file has not
	fi, err := os.Stat(filepath.Dir(p))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fi.IsDir(), true)
	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// joining an already joined path does not prepend the base again
	q, err := resources.JoinPath(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)
}

func TestPortable(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir("emu6502_portable", 0o700))

	p, err := resources.JoinPath("prefs")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join("emu6502_portable", "prefs"))
}

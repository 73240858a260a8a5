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

// Package programloader is used to specify the program image that is to be
// written into the memory of the emulated machine.
//
// When the image is ready to be loaded, the Load() function should be used.
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported. The Write()
// function then copies the data into memory.
//
// The simplest instance of the Loader type:
//
//	ld := programloader.Loader{
//		Filename: "roms/sieve.bin",
//		BaseAddress: 0x0600,
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function will set the HeaderAddress field automatically
// according to the filename extension. Files with the ".PRG" extension carry
// their load address in the first two bytes of the file.
package programloader

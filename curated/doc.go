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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages in this project declare their sentinel patterns
// as exported string constants. For example, from the cpu package:
//
//	const UnrecognisedOpcode = "cpu: unrecognised opcode (%#02x) at (%#04x)"
//
//	err := curated.Errorf(UnrecognisedOpcode, 0x02, 0x0400)
//	if curated.Is(err, UnrecognisedOpcode) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf("machine: %v", err)
//	curated.Has(f, UnrecognisedOpcode) // true
//	curated.Is(f, UnrecognisedOpcode)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts, where parts are separated by the sub-string ": ". This
// means that wrapping an error with the same prefix more than once does not
// result in a stuttering message:
//
//	cpu: cpu: unrecognised opcode
//
// becomes
//
//	cpu: unrecognised opcode
//
// Curated errors also implement Unwrap(), returning the first error found in
// the placeholder values, so that errors.Is() from the standard library works
// through a curated wrapper.
package curated

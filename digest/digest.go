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

// Package digest produces cryptographic hashes of the emulation so that the
// results of subsequent executions can be compared. If a new hash differs
// from a previously recorded value then something has changed.
package digest

// Digest implementations return a cryptographic hash of whatever they are
// monitoring. How the hash is updated is particular to the implementation.
type Digest interface {
	Hash() string
	ResetDigest()
}

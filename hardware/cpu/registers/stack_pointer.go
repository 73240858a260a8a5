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

package registers

import (
	"fmt"

	"github.com/drewwalton19216801/Emu6502Console/hardware/memory/cpubus"
)

// StackPointer is the 8 bit SP register. The stack is fixed to a single page
// of memory so incrementing and decrementing the stack pointer never changes
// the page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory address the stack pointer currently points to.
func (sp StackPointer) Address() uint16 {
	return cpubus.StackPage | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Increment stack pointer. wraps within the stack page.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement stack pointer. wraps within the stack page.
func (sp *StackPointer) Decrement() {
	sp.value--
}

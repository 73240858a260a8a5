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

package remote

import (
	"encoding/binary"
)

// ProtocolError is the sentinel pattern for errors returned by the package.
const ProtocolError = "remote: %v"

// Opbyte is the first byte of every request and response.
type Opbyte uint8

// List of valid Opbyte values.
const (
	// responses
	Ack  = Opbyte(0x00)
	Fail = Opbyte(0x01)

	// general commands
	Bye   = Opbyte(0x10)
	Reset = Opbyte(0x1d)
	Run   = Opbyte(0x1e)
	Tick  = Opbyte(0x1f)

	// register commands
	WriteA  = Opbyte(0x20)
	ReadA   = Opbyte(0x21)
	WriteX  = Opbyte(0x22)
	ReadX   = Opbyte(0x23)
	WriteY  = Opbyte(0x24)
	ReadY   = Opbyte(0x25)
	WriteS  = Opbyte(0x26)
	ReadS   = Opbyte(0x27)
	WriteP  = Opbyte(0x28)
	ReadP   = Opbyte(0x29)
	WritePC = Opbyte(0x2a)
	ReadPC  = Opbyte(0x2b)

	// memory commands
	Peek = Opbyte(0x30)
	Poke = Opbyte(0x31)
)

// Register identifies one of the CPU registers.
type Register int

// Status byte following the cycle count in the response to the Run command.
const (
	RunCompleted = uint8(0x00)
	RunHalted    = uint8(0x01)
)

// List of valid Register values.
const (
	RegA Register = iota
	RegX
	RegY
	RegS
	RegP
	RegPC
)

func (r Register) String() string {
	switch r {
	case RegA:
		return "A"
	case RegX:
		return "X"
	case RegY:
		return "Y"
	case RegS:
		return "SP"
	case RegP:
		return "P"
	case RegPC:
		return "PC"
	}
	return "unknown register"
}

// the read and write opbytes for each register. the write opbyte is always
// one less than the read opbyte.
func (r Register) opbytes() (read Opbyte, write Opbyte, ok bool) {
	if r < RegA || r > RegPC {
		return 0, 0, false
	}
	write = WriteA + Opbyte(r*2)
	return write + 1, write, true
}

// width of the register in bytes.
func (r Register) width() int {
	if r == RegPC {
		return 2
	}
	return 1
}

// sendBuf is a message under construction. the buffer is allocated with the
// exact length required and dest is the part of the buffer still to be
// filled.
type sendBuf struct {
	buf  []uint8
	dest []uint8
}

func newMessage(op Opbyte, restLen int) sendBuf {
	buf := make([]uint8, restLen+1)
	buf[0] = uint8(op)
	return sendBuf{buf: buf, dest: buf[1:]}
}

func newAck(restLen int) sendBuf {
	return newMessage(Ack, restLen)
}

func newFail() sendBuf {
	return newMessage(Fail, 0)
}

func (b *sendBuf) appendB(v uint8) {
	b.dest[0] = v
	b.dest = b.dest[1:]
}

func (b *sendBuf) appendW(v uint16) {
	binary.BigEndian.PutUint16(b.dest[0:2], v)
	b.dest = b.dest[2:]
}

func (b *sendBuf) appendL(v uint32) {
	binary.BigEndian.PutUint32(b.dest[0:4], v)
	b.dest = b.dest[4:]
}

// complete returns true if every byte in the message has been filled.
func (b sendBuf) complete() bool {
	return len(b.dest) == 0
}

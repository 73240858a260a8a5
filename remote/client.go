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
	"fmt"
	"io"

	"github.com/drewwalton19216801/Emu6502Console/curated"
)

// Client sends commands to a Server. The io.ReadWriter is usually a
// net.Conn.
type Client struct {
	rw io.ReadWriter
}

// NewClient is the preferred method of initialisation for the Client type.
func NewClient(rw io.ReadWriter) *Client {
	return &Client{rw: rw}
}

func (cl *Client) send(b sendBuf) error {
	if !b.complete() {
		return curated.Errorf(ProtocolError, "incomplete message")
	}
	_, err := cl.rw.Write(b.buf)
	if err != nil {
		return curated.Errorf(ProtocolError, err)
	}
	return nil
}

// receive the response to a command. the returned slice is the response data
// following the Ack opbyte, which is always n bytes long.
func (cl *Client) receive(n int) ([]uint8, error) {
	var op [1]uint8
	_, err := io.ReadFull(cl.rw, op[:])
	if err != nil {
		return nil, curated.Errorf(ProtocolError, err)
	}

	switch Opbyte(op[0]) {
	case Ack:
	case Fail:
		return nil, curated.Errorf(ProtocolError, "command failed")
	default:
		return nil, curated.Errorf(ProtocolError, fmt.Sprintf("expected Ack or Fail, got %#02x", op[0]))
	}

	data := make([]uint8, n)
	_, err = io.ReadFull(cl.rw, data)
	if err != nil {
		return nil, curated.Errorf(ProtocolError, err)
	}
	return data, nil
}

func word(b []uint8) uint16 {
	return (uint16(b[0]) << 8) | uint16(b[1])
}

// Bye ends the session. The server closes the connection but the caller
// should still close its end.
func (cl *Client) Bye() error {
	return cl.send(newMessage(Bye, 0))
}

// Tick executes a single instruction. Returns the number of cycles used.
func (cl *Client) Tick() (int, error) {
	if err := cl.send(newMessage(Tick, 0)); err != nil {
		return 0, err
	}
	d, err := cl.receive(1)
	if err != nil {
		return 0, err
	}
	return int(d[0]), nil
}

// Run executes instructions until at least the number of cycles have been
// used. Returns the number of cycles actually used, which is also valid when
// the run was halted by an error.
func (cl *Client) Run(cycles uint16) (int, error) {
	b := newMessage(Run, 2)
	b.appendW(cycles)
	if err := cl.send(b); err != nil {
		return 0, err
	}
	d, err := cl.receive(5)
	if err != nil {
		return 0, err
	}
	used := int(binary.BigEndian.Uint32(d))
	if d[4] != RunCompleted {
		return used, curated.Errorf(ProtocolError, "run halted")
	}
	return used, nil
}

// Reset the machine with the PC set to the vector.
func (cl *Client) Reset(vector uint16) error {
	b := newMessage(Reset, 2)
	b.appendW(vector)
	if err := cl.send(b); err != nil {
		return err
	}
	_, err := cl.receive(0)
	return err
}

// ReadReg returns the value of the register. Eight bit registers are
// returned in the lower byte.
func (cl *Client) ReadReg(reg Register) (uint16, error) {
	rd, _, ok := reg.opbytes()
	if !ok {
		return 0, curated.Errorf(ProtocolError, fmt.Sprintf("unknown register (%d)", reg))
	}
	if err := cl.send(newMessage(rd, 0)); err != nil {
		return 0, err
	}
	d, err := cl.receive(reg.width())
	if err != nil {
		return 0, err
	}
	if len(d) == 2 {
		return word(d), nil
	}
	return uint16(d[0]), nil
}

// WriteReg sets the value of the register. Only the lower byte is used for
// eight bit registers.
func (cl *Client) WriteReg(reg Register, v uint16) error {
	_, wr, ok := reg.opbytes()
	if !ok {
		return curated.Errorf(ProtocolError, fmt.Sprintf("unknown register (%d)", reg))
	}
	b := newMessage(wr, reg.width())
	if reg.width() == 2 {
		b.appendW(v)
	} else {
		b.appendB(uint8(v))
	}
	if err := cl.send(b); err != nil {
		return err
	}
	_, err := cl.receive(0)
	return err
}

// Peek returns the value at the memory address.
func (cl *Client) Peek(address uint16) (uint8, error) {
	b := newMessage(Peek, 2)
	b.appendW(address)
	if err := cl.send(b); err != nil {
		return 0, err
	}
	d, err := cl.receive(1)
	if err != nil {
		return 0, err
	}
	return d[0], nil
}

// Poke writes the value to the memory address.
func (cl *Client) Poke(address uint16, v uint8) error {
	b := newMessage(Poke, 3)
	b.appendW(address)
	b.appendB(v)
	if err := cl.send(b); err != nil {
		return err
	}
	_, err := cl.receive(0)
	return err
}

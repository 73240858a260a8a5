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
	"fmt"
	"sync"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/hardware"
	"github.com/drewwalton19216801/Emu6502Console/logger"
)

// Server serves remote connections for a single Machine.
type Server struct {
	m *hardware.Machine

	// critical section protecting the machine. commands from different
	// connections are never interleaved
	crit sync.Mutex
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(m *hardware.Machine) (*Server, error) {
	if m == nil {
		return nil, curated.Errorf(ProtocolError, "no machine")
	}
	return &Server{m: m}, nil
}

// clientConn is the transport for a single client connection.
type clientConn interface {
	inB() (uint8, error)
	inW() (uint16, error)
	out(b sendBuf) error
	close() error
}

// session is the state for a single client connection.
type session struct {
	srv    *Server
	conn   clientConn
	tag    string
	closed bool
}

// serve commands from the client until the client says goodbye or until an
// error occurs. the connection is always closed on return.
func (srv *Server) serve(conn clientConn, remoteAddr string) {
	s := session{
		srv:  srv,
		conn: conn,
		tag:  fmt.Sprintf("remote %s", remoteAddr),
	}

	logger.Log(logger.Allow, s.tag, "new client connection")

	for !s.closed {
		err := s.serveNextCmd()
		if err != nil {
			logger.Logf(logger.Allow, s.tag, "closing connection due to an error: %v", err)
			break
		}
	}

	if err := conn.close(); err != nil {
		logger.Log(logger.Allow, s.tag, err)
	}
	logger.Log(logger.Allow, s.tag, "closed client connection")
}

// serveNextCmd reads and performs a single command. an error is returned only
// if the connection can no longer be used.
func (s *session) serveNextCmd() error {
	b, err := s.conn.inB()
	if err != nil {
		return err
	}

	op := Opbyte(b)

	switch op {
	case Bye:
		s.closed = true
		return nil

	case Tick:
		s.srv.crit.Lock()
		res, err := s.srv.m.Step(nil)
		s.srv.crit.Unlock()
		if err != nil {
			logger.Log(logger.Allow, s.tag, err)
			return s.conn.out(newFail())
		}
		r := newAck(1)
		r.appendB(uint8(res.Cycles))
		return s.conn.out(r)

	case Run:
		cycles, err := s.conn.inW()
		if err != nil {
			return err
		}
		s.srv.crit.Lock()
		used, err := s.srv.m.Execute(int(cycles))
		s.srv.crit.Unlock()

		// the final instruction can take the count past 16 bits and the
		// cycles used before a halt are still reported
		r := newAck(5)
		r.appendL(uint32(used))
		if err != nil {
			logger.Log(logger.Allow, s.tag, err)
			r.appendB(RunHalted)
		} else {
			r.appendB(RunCompleted)
		}
		return s.conn.out(r)

	case Reset:
		vector, err := s.conn.inW()
		if err != nil {
			return err
		}
		s.srv.crit.Lock()
		s.srv.m.Reset(vector)
		s.srv.crit.Unlock()
		return s.conn.out(newAck(0))

	case Peek:
		address, err := s.conn.inW()
		if err != nil {
			return err
		}
		s.srv.crit.Lock()
		v := s.srv.m.Mem.Peek(address)
		s.srv.crit.Unlock()
		r := newAck(1)
		r.appendB(v)
		return s.conn.out(r)

	case Poke:
		address, err := s.conn.inW()
		if err != nil {
			return err
		}
		v, err := s.conn.inB()
		if err != nil {
			return err
		}
		s.srv.crit.Lock()
		s.srv.m.Mem.Poke(address, v)
		s.srv.crit.Unlock()
		return s.conn.out(newAck(0))
	}

	if op >= WriteA && op <= ReadPC {
		return s.register(Register((op-WriteA)/2), (op-WriteA)%2 == 0)
	}

	logger.Logf(logger.Allow, s.tag, "unrecognised opbyte %#02x", b)
	return s.conn.out(newFail())
}

// read or write the register. write values are read from the connection.
func (s *session) register(reg Register, write bool) error {
	cpu := s.srv.m.CPU

	if write {
		var v uint16
		var err error
		if reg.width() == 2 {
			v, err = s.conn.inW()
		} else {
			var b uint8
			b, err = s.conn.inB()
			v = uint16(b)
		}
		if err != nil {
			return err
		}

		s.srv.crit.Lock()
		switch reg {
		case RegA:
			cpu.A.Load(uint8(v))
		case RegX:
			cpu.X.Load(uint8(v))
		case RegY:
			cpu.Y.Load(uint8(v))
		case RegS:
			cpu.SP.Load(uint8(v))
		case RegP:
			cpu.Status.Load(uint8(v))
		case RegPC:
			cpu.PC.Load(v)
		}
		s.srv.crit.Unlock()

		return s.conn.out(newAck(0))
	}

	s.srv.crit.Lock()
	st := cpu.State()
	s.srv.crit.Unlock()

	if reg == RegPC {
		r := newAck(2)
		r.appendW(st.PC)
		return s.conn.out(r)
	}

	r := newAck(1)
	switch reg {
	case RegA:
		r.appendB(st.A)
	case RegX:
		r.appendB(st.X)
	case RegY:
		r.appendB(st.Y)
	case RegS:
		r.appendB(st.SP)
	case RegP:
		r.appendB(st.Status.Value())
	}
	return s.conn.out(r)
}

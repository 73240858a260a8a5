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
	"bufio"
	"errors"
	"io"
	"net"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/logger"
)

type tcpClientConn struct {
	conn   net.Conn
	reader *bufio.Reader
}

func (conn *tcpClientConn) close() error {
	return conn.conn.Close()
}

func (conn *tcpClientConn) out(b sendBuf) error {
	if !b.complete() {
		return curated.Errorf(ProtocolError, "incomplete message")
	}
	_, err := conn.conn.Write(b.buf)
	return err
}

func (conn *tcpClientConn) inB() (uint8, error) {
	return conn.reader.ReadByte()
}

func (conn *tcpClientConn) inW() (uint16, error) {
	var b [2]uint8
	_, err := io.ReadFull(conn.reader, b[:])
	if err != nil {
		return 0, err
	}
	return (uint16(b[0]) << 8) | uint16(b[1]), nil
}

// ServeConn serves a single connection until the client says goodbye or the
// connection fails. The connection is closed on return.
func (srv *Server) ServeConn(conn net.Conn) {
	srv.serve(&tcpClientConn{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}, conn.RemoteAddr().String())
}

// ServeTCP accepts connections from the listener, serving each one in its own
// goroutine. Returns nil when the listener is closed.
func (srv *Server) ServeTCP(listener net.Listener) error {
	logger.Logf(logger.Allow, "remote", "serving tcp connections at %s", listener.Addr())

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return curated.Errorf(ProtocolError, err)
		}
		go srv.ServeConn(conn)
	}
}

// ListenAndServeTCP listens on the TCP address and then calls ServeTCP().
func (srv *Server) ListenAndServeTCP(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return curated.Errorf(ProtocolError, err)
	}
	defer listener.Close()
	return srv.ServeTCP(listener)
}

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
	"net/http"

	"github.com/drewwalton19216801/Emu6502Console/curated"
	"github.com/drewwalton19216801/Emu6502Console/logger"
	"github.com/gorilla/websocket"
)

// WebsocketPath is the path at which ListenAndServeWebsocket() accepts
// websocket connections.
const WebsocketPath = "/emu6502"

type wsClientConn struct {
	conn   *websocket.Conn
	msgBuf []uint8
}

func (conn *wsClientConn) close() error {
	return conn.conn.Close()
}

func (conn *wsClientConn) out(b sendBuf) error {
	if !b.complete() {
		return curated.Errorf(ProtocolError, "incomplete message")
	}
	return conn.conn.WriteMessage(websocket.BinaryMessage, b.buf)
}

// receive messages until at least n bytes are buffered.
func (conn *wsClientConn) fill(n int) error {
	for len(conn.msgBuf) < n {
		tp, msg, err := conn.conn.ReadMessage()
		if err != nil {
			return err
		}
		if tp != websocket.BinaryMessage {
			return curated.Errorf(ProtocolError, "expected binary message")
		}
		conn.msgBuf = append(conn.msgBuf, msg...)
	}
	return nil
}

func (conn *wsClientConn) inB() (uint8, error) {
	if err := conn.fill(1); err != nil {
		return 0, err
	}
	v := conn.msgBuf[0]
	conn.msgBuf = conn.msgBuf[1:]
	return v, nil
}

func (conn *wsClientConn) inW() (uint16, error) {
	if err := conn.fill(2); err != nil {
		return 0, err
	}
	v := (uint16(conn.msgBuf[0]) << 8) | uint16(conn.msgBuf[1])
	conn.msgBuf = conn.msgBuf[2:]
	return v, nil
}

// Handler returns an http.Handler that upgrades requests to websocket
// connections and serves them.
func (srv *Server) Handler() http.Handler {
	var upgrader websocket.Upgrader

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Logf(logger.Allow, "remote", "websocket upgrade: %v", err)
			return
		}
		srv.serve(&wsClientConn{conn: conn}, conn.RemoteAddr().String())
	})
}

// ListenAndServeWebsocket serves websocket connections at WebsocketPath on the
// TCP address.
func (srv *Server) ListenAndServeWebsocket(addr string) error {
	mux := http.NewServeMux()
	mux.Handle(WebsocketPath, srv.Handler())

	logger.Logf(logger.Allow, "remote", "serving websocket connections at %s%s", addr, WebsocketPath)

	err := http.ListenAndServe(addr, mux)
	if err != nil {
		return curated.Errorf(ProtocolError, err)
	}
	return nil
}

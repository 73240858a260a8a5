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

// Package remote allows a Machine to be controlled over a network
// connection. The protocol is a simple binary request/response exchange. Every
// request starts with a single opbyte naming the command, followed by any
// arguments. Every response starts with either the Ack or Fail opbyte. Ack
// responses are followed by the command's return values, if any. Fail
// responses carry no further data.
//
// The Run command is always acknowledged. The count of cycles used is 32bit
// because the final instruction can take it beyond the 16bit request. The
// count is followed by a status byte: RunCompleted or RunHalted, the latter
// meaning execution stopped with an error. The cycles used before the error
// are included in the count.
//
// Multi-byte values are sent most significant byte first.
//
// The table below shows the arguments and return values of each command.
//
//	Opbyte  Command    Arguments         Returns (after Ack)
//	0x10    Bye
//	0x1d    Reset      vector (16bit)
//	0x1e    Run        cycles (16bit)    cycles used (32bit)
//	                                     status (8bit)
//	0x1f    Tick                         cycles used (8bit)
//	0x20    WriteA     value (8bit)
//	0x21    ReadA                        value (8bit)
//	0x22    WriteX     value (8bit)
//	0x23    ReadX                        value (8bit)
//	0x24    WriteY     value (8bit)
//	0x25    ReadY                        value (8bit)
//	0x26    WriteS     value (8bit)
//	0x27    ReadS                        value (8bit)
//	0x28    WriteP     value (8bit)
//	0x29    ReadP                        value (8bit)
//	0x2a    WritePC    value (16bit)
//	0x2b    ReadPC                       value (16bit)
//	0x30    Peek       address (16bit)   value (8bit)
//	0x31    Poke       address (16bit)   none
//	                   value (8bit)
//
// The Bye command has no response. The connection is closed by the server
// after it has been received.
//
// A Server can accept connections from a net.Listener, with ServeTCP(), or
// from websocket upgrades, with the http.Handler returned by Handler().
// Websocket messages must be binary messages. A request may be split over
// more than one message.
//
// Each command is performed atomically with respect to commands from other
// connections to the same Server.
//
// The Client type implements the client side of the protocol for any
// io.ReadWriter.
package remote

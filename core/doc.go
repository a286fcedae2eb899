/*
Package core is the entry point the NSCA transport uses to protect payloads.

A Session owns exactly one cipher instance. The server side calls
SelectAndInit without a peer IV, sends TransmitIV to the client in the init
packet and keeps the Session for the connection. The client side reads the
init packet and calls SelectAndInit with the received IV. Both then call
EncryptOutbound on every outgoing message, in order.

Every error returned by a Session is fatal to the connection; a Session never
falls back to another algorithm or to plaintext.
*/
package core

import "log"

// Debug enables logging of session setup.
var Debug = false

func logf(format string, v ...interface{}) {
	if Debug {
		log.Printf(format, v...)
	}
}

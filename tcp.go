package main

import (
	"io"
	"net"
	"time"

	"github.com/jinmeng260/nscp/core"
	"github.com/jinmeng260/nscp/internal"
)

// Connect to the server, receive its IV and send r encrypted.
func tcpSend(ep endpoint, r io.Reader) error {
	c, err := net.DialTimeout("tcp", ep.Addr, config.Timeout)
	if err != nil {
		return err
	}
	defer c.Close()

	c.SetReadDeadline(time.Now().Add(config.Timeout))
	iv, ts, err := core.ReadInitPacket(c)
	if err != nil {
		return err
	}
	logf("received IV from %s (server time %v)", c.RemoteAddr(), ts)

	s := core.NewSession(core.Config{})
	defer s.Close()
	if err := s.SelectAndInit(ep.Algorithm, ep.Password, iv); err != nil {
		return err
	}

	w := core.NewWriter(c, s)
	n, err := io.Copy(w, r)
	if err == nil {
		err = w.Flush()
	}
	logf("sent %d bytes with %s", n, s.Name())
	return err
}

// Listen on addr, hand each connection a fresh IV and drain what it sends.
// Payloads cannot be decrypted here; only their size is logged.
func tcpRemote(ep endpoint) {
	ln, err := net.Listen("tcp", ep.Addr)
	if err != nil {
		logf("failed to listen on %s: %v", ep.Addr, err)
		return
	}

	filter := internal.NewIVRing()
	logf("listening TCP on %s", ep.Addr)
	for {
		conn, err := ln.Accept()
		if err != nil {
			logf("failed to accept: %s", err)
			continue
		}
		go tcpRemoteHandle(conn, ep, filter)
	}
}

func tcpRemoteHandle(c net.Conn, ep endpoint, filter *internal.BloomRing) {
	defer c.Close()

	s := core.NewSession(core.Config{IVFilter: filter})
	defer s.Close()
	if err := s.SelectAndInit(ep.Algorithm, ep.Password, nil); err != nil {
		logf("failed to set up cipher for %s: %v", c.RemoteAddr(), err)
		return
	}

	c.SetWriteDeadline(time.Now().Add(config.Timeout))
	if err := core.WriteInitPacket(c, s.TransmitIV(), time.Now()); err != nil {
		logf("failed to send IV to %s: %v", c.RemoteAddr(), err)
		return
	}

	c.SetReadDeadline(time.Now().Add(config.Timeout))
	n, err := io.Copy(io.Discard, c)
	if err != nil {
		if err, ok := err.(net.Error); ok && err.Timeout() {
			logf("%s timed out after %d bytes", c.RemoteAddr(), n)
			return
		}
		logf("read error from %s: %v", c.RemoteAddr(), err)
		return
	}
	logf("received %d encrypted bytes from %s using %s", n, c.RemoteAddr(), s.Name())
}

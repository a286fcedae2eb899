package core

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/jinmeng260/nscp/cipher"
)

// InitPacketSize is the size of the packet a server sends right after
// accepting a connection: the transmit IV followed by a 32-bit big-endian
// UNIX timestamp.
const InitPacketSize = cipher.TransmittedIVSize + 4

// WriteInitPacket writes iv and ts as an init packet.
func WriteInitPacket(w io.Writer, iv []byte, ts time.Time) error {
	if len(iv) != cipher.TransmittedIVSize {
		return errors.Wrapf(cipher.ErrConfig, "init packet needs a %d byte IV, got %d", cipher.TransmittedIVSize, len(iv))
	}
	var pkt [InitPacketSize]byte
	copy(pkt[:], iv)
	binary.BigEndian.PutUint32(pkt[cipher.TransmittedIVSize:], uint32(ts.Unix()))
	_, err := w.Write(pkt[:])
	return err
}

// ReadInitPacket reads an init packet and returns the IV and timestamp.
func ReadInitPacket(r io.Reader) ([]byte, time.Time, error) {
	var pkt [InitPacketSize]byte
	if _, err := io.ReadFull(r, pkt[:]); err != nil {
		return nil, time.Time{}, err
	}
	iv := append([]byte(nil), pkt[:cipher.TransmittedIVSize]...)
	ts := time.Unix(int64(binary.BigEndian.Uint32(pkt[cipher.TransmittedIVSize:])), 0)
	return iv, ts, nil
}

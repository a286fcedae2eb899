package core

import (
	"io"
)

// FrameSize is the size of the messages a Writer cuts its stream into.
const FrameSize = 32 * 1024

// Writer encrypts a byte stream with a Session before passing it on. The
// stream is cut into messages of FrameSize bytes at fixed offsets, whatever
// the sizes of the Write calls or of the reads behind ReadFrom, so ciphers
// that restart on every message still give the same output for the same
// input. Flush sends the pending bytes as a final, shorter message.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w   io.Writer
	s   *Session
	buf []byte // pending plaintext, always shorter than FrameSize between calls
}

// NewWriter returns a Writer encrypting with s into w. The caller's buffers
// are never modified.
func NewWriter(w io.Writer, s *Session) *Writer {
	return &Writer{w: w, s: s, buf: make([]byte, 0, FrameSize)}
}

func (w *Writer) Write(b []byte) (n int, err error) {
	for len(b) > 0 {
		k := copy(w.buf[len(w.buf):FrameSize], b)
		w.buf = w.buf[:len(w.buf)+k]
		b = b[k:]
		n += k
		if len(w.buf) == FrameSize {
			if err = w.send(); err != nil {
				return
			}
		}
	}
	return
}

// ReadFrom reads from r until EOF or error, encrypts and writes every full
// frame to the underlying io.Writer. Returns number of bytes read from r and
// any error encountered. The tail stays pending until Flush.
func (w *Writer) ReadFrom(r io.Reader) (n int64, err error) {
	for {
		nr, er := r.Read(w.buf[len(w.buf):FrameSize])
		if nr > 0 {
			n += int64(nr)
			w.buf = w.buf[:len(w.buf)+nr]
			if len(w.buf) == FrameSize {
				if err = w.send(); err != nil {
					return
				}
			}
		}

		if er != nil {
			if er != io.EOF { // ignore EOF as per io.ReaderFrom contract
				err = er
			}
			return
		}
	}
}

// Flush encrypts and writes the pending bytes, if any, as one message.
func (w *Writer) Flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	return w.send()
}

func (w *Writer) send() error {
	msg := w.buf
	w.buf = w.buf[:0]
	if err := w.s.EncryptOutbound(msg); err != nil {
		wipe(msg)
		return err
	}
	_, err := w.w.Write(msg)
	return err
}

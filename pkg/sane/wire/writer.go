package wire

import (
	"io"
	"math"

	"github.com/jmillikin/go-sane-net/pkg/sane"
)

// Writer encodes SANE primitives to an underlying byte stream. A Writer
// is not safe for concurrent use.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w for SANE primitive encoding.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteWord writes one big-endian 32-bit word.
func (w *Writer) WriteWord(v sane.Word) error {
	buf := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	if _, err := w.w.Write(buf[:]); err != nil {
		return &sane.EncodeError{Kind: sane.ErrIO, Err: err}
	}
	return nil
}

// WriteBool writes a Bool as a Word (0 or 1).
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteWord(1)
	}
	return w.WriteWord(0)
}

// WriteInt writes a signed integer as its bit-identical Word.
func (w *Writer) WriteInt(v sane.Int) error {
	return w.WriteWord(sane.Word(uint32(int32(v))))
}

// WriteFixed writes a Q16.16 fixed-point number as its bit-identical
// Word.
func (w *Writer) WriteFixed(v sane.Fixed) error {
	return w.WriteWord(sane.Word(uint32(int32(v))))
}

// WriteSize writes n as a Word, failing with SizeOverflow if n does not
// fit in 32 bits.
func (w *Writer) WriteSize(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return &sane.EncodeError{Kind: sane.ErrSizeOverflow, Size: uint64(n)}
	}
	return w.WriteWord(sane.Word(uint32(n)))
}

// WriteBytes writes raw bytes with no length prefix.
func (w *Writer) WriteBytes(b []byte) error {
	if _, err := w.w.Write(b); err != nil {
		return &sane.EncodeError{Kind: sane.ErrIO, Err: err}
	}
	return nil
}

// WriteCString writes s as a length-prefixed, NUL-terminated byte
// string. An empty string encodes as a zero-length field (the wire
// NULL representation), matching ReadCString's inverse.
func (w *Writer) WriteCString(s string) error {
	if s == "" {
		return w.WriteSize(0)
	}
	if err := w.WriteSize(len(s) + 1); err != nil {
		return err
	}
	if err := w.WriteBytes([]byte(s)); err != nil {
		return err
	}
	return w.WriteBytes([]byte{0})
}

// WriteCStringNonNull writes s using the length-1 "present but empty"
// encoding when s is empty, instead of WriteCString's length-0 NULL
// encoding. It is the encode-side counterpart of ReadCStringOrNull, for
// STRING_LIST elements where length-0 is reserved for the terminator.
func (w *Writer) WriteCStringNonNull(s string) error {
	if err := w.WriteSize(len(s) + 1); err != nil {
		return err
	}
	if err := w.WriteBytes([]byte(s)); err != nil {
		return err
	}
	return w.WriteBytes([]byte{0})
}

// WriteCStringListTerminator writes the NULL sentinel that ends a
// STRING_LIST constraint.
func (w *Writer) WriteCStringListTerminator() error {
	return w.WriteSize(0)
}

// WriteNullFlag writes the Bool flag that precedes a nullable pointer
// slot. isNull true writes the NULL (TRUE) flag.
func (w *Writer) WriteNullFlag(isNull bool) error {
	return w.WriteBool(isNull)
}

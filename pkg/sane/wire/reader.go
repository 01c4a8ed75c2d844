// Package wire implements the blocking byte-stream I/O layer the SANE
// Network protocol codec is built on: size-prefix helpers, bounded
// allocation, and nullable-pointer framing, layered directly over
// io.Reader/io.Writer.
package wire

import (
	"bytes"
	"io"
	"math"

	"github.com/jmillikin/go-sane-net/pkg/sane"
)

// MaxAlloc bounds any single length-prefixed allocation a Reader will
// perform while decoding a message. It exists to turn a corrupt or
// hostile length field into a bounded-size error instead of an
// unbounded memory grab; 64 MiB comfortably covers any legitimate SANE
// message (the protocol carries no image data).
const MaxAlloc = 64 << 20

// Reader decodes SANE primitives from an underlying byte stream. A
// Reader is not safe for concurrent use; callers needing concurrent
// decodes must synchronize access to the underlying stream themselves.
type Reader struct {
	r io.Reader
}

// NewReader wraps r for SANE primitive decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadWord reads one big-endian 32-bit word.
func (r *Reader) ReadWord() (sane.Word, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, ioErr(err)
	}
	return sane.Word(uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])), nil
}

// ReadBool reads a Word and requires it to be exactly 0 or 1.
func (r *Reader) ReadBool() (bool, error) {
	w, err := r.ReadWord()
	if err != nil {
		return false, err
	}
	switch w {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &sane.DecodeError{Kind: sane.ErrInvalidBool, Word: uint32(w)}
	}
}

// ReadInt reads a Word as a two's-complement signed integer.
func (r *Reader) ReadInt() (sane.Int, error) {
	w, err := r.ReadWord()
	if err != nil {
		return 0, err
	}
	return sane.Int(int32(w)), nil
}

// ReadFixed reads a Word as a Q16.16 fixed-point number.
func (r *Reader) ReadFixed() (sane.Fixed, error) {
	w, err := r.ReadWord()
	if err != nil {
		return 0, err
	}
	return sane.Fixed(int32(w)), nil
}

// ReadSize reads a Word and converts it to a native int, failing with
// SizeOverflow if it does not fit (unreachable on 64-bit platforms,
// kept for parity with 32-bit targets and for symmetry with the
// reference implementation).
func (r *Reader) ReadSize() (int, error) {
	w, err := r.ReadWord()
	if err != nil {
		return 0, err
	}
	if uint64(w) > math.MaxInt {
		return 0, &sane.DecodeError{Kind: sane.ErrSizeOverflow, Word: uint32(w)}
	}
	return int(w), nil
}

// ReadBytes performs a bounded allocation of exactly n bytes and fills
// it from the stream. It fails with TryReserveError before allocating
// if n exceeds MaxAlloc.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > MaxAlloc {
		return nil, &sane.DecodeError{Kind: sane.ErrTryReserve, Word: uint32(n)}
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, ioErr(err)
	}
	return buf, nil
}

// ReadCString reads a length-prefixed, NUL-terminated byte string. A
// length of 0 decodes to the empty string (used both for a protocol
// NULL and for a genuinely empty string — they share a wire
// representation). A NUL before the final byte truncates the result;
// the complete absence of a NUL within a non-empty payload is an
// InvalidString error.
func (r *Reader) ReadCString() (string, error) {
	n, err := r.ReadSize()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if idx := bytes.IndexByte(buf, 0); idx >= 0 {
		return string(buf[:idx]), nil
	}
	return "", &sane.DecodeError{Kind: sane.ErrInvalidString}
}

// ReadCStringOrNull reads a length-prefixed byte string the same way
// ReadCString does, but distinguishes a protocol NULL (length 0) from a
// present-but-empty string (length 1, a lone NUL byte) by returning
// isNull. It is used for STRING_LIST constraint decoding, where the
// NULL encoding is reserved for the list terminator and a real element
// must use the length-1 form to represent "".
func (r *Reader) ReadCStringOrNull() (s string, isNull bool, err error) {
	n, err := r.ReadSize()
	if err != nil {
		return "", false, err
	}
	if n == 0 {
		return "", true, nil
	}
	buf, err := r.ReadBytes(n)
	if err != nil {
		return "", false, err
	}
	if idx := bytes.IndexByte(buf, 0); idx >= 0 {
		return string(buf[:idx]), false, nil
	}
	return "", false, &sane.DecodeError{Kind: sane.ErrInvalidString}
}

// ReadNullFlag reads the Bool flag that precedes every nullable pointer
// slot. true means the slot is NULL.
func (r *Reader) ReadNullFlag() (bool, error) {
	return r.ReadBool()
}

func ioErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &sane.DecodeError{Kind: sane.ErrIO, Err: err}
	}
	return &sane.DecodeError{Kind: sane.ErrIO, Err: err}
}

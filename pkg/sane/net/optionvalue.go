package net

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// OptionValue is a (ValueType, raw wire bytes) pair. Bytes holds the
// value already in its big-endian wire representation, so encoding is
// just "write the length, write the bytes": the various typed
// accessors below are responsible for interpreting it.
type OptionValue struct {
	ValueType sane.ValueType
	Bytes     []byte
}

// NewBoolValue builds a BOOL OptionValue.
func NewBoolValue(v bool) OptionValue {
	w := sane.Word(0)
	if v {
		w = 1
	}
	return OptionValue{ValueType: sane.ValueTypeBool, Bytes: wordBytes(w)}
}

// NewInt32Value builds a single-element INT OptionValue.
func NewInt32Value(v int32) OptionValue {
	return OptionValue{ValueType: sane.ValueTypeInt, Bytes: wordBytes(sane.Word(uint32(v)))}
}

// NewInt32ListValue builds a multi-element INT OptionValue.
func NewInt32ListValue(values []int32) OptionValue {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return OptionValue{ValueType: sane.ValueTypeInt, Bytes: buf}
}

// NewFixedValue builds a single-element FIXED OptionValue.
func NewFixedValue(v sane.Fixed) OptionValue {
	return OptionValue{ValueType: sane.ValueTypeFixed, Bytes: wordBytes(sane.Word(uint32(int32(v))))}
}

// NewFixedListValue builds a multi-element FIXED OptionValue.
func NewFixedListValue(values []sane.Fixed) OptionValue {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint32(buf[i*4:], uint32(int32(v)))
	}
	return OptionValue{ValueType: sane.ValueTypeFixed, Bytes: buf}
}

// NewCStringValue builds a STRING OptionValue sized exactly to hold s
// plus its terminating NUL.
func NewCStringValue(s string) OptionValue {
	return NewCStringValueWithSize(s, len(s)+1)
}

// NewCStringValueWithSize builds a STRING OptionValue zero-padded to
// size bytes. It panics if size is smaller than len(s)+1: that is a
// programming error, not a wire-format error, since the caller
// controls both arguments directly.
func NewCStringValueWithSize(s string, size int) OptionValue {
	need := len(s) + 1
	if size < need {
		panic(fmt.Sprintf("sane: NewCStringValueWithSize: size %d smaller than required %d", size, need))
	}
	buf := make([]byte, size)
	copy(buf, s)
	return OptionValue{ValueType: sane.ValueTypeString, Bytes: buf}
}

// NewButtonValue builds the empty BUTTON OptionValue.
func NewButtonValue() OptionValue {
	return OptionValue{ValueType: sane.ValueTypeButton}
}

func wordBytes(w sane.Word) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(w))
	return buf
}

// ToBool returns v's value as a bool. It fails if v is not a
// single-word BOOL value or the word is not 0/1.
func (v OptionValue) ToBool() (bool, error) {
	if v.ValueType != sane.ValueTypeBool || len(v.Bytes) != 4 {
		return false, invalidOptionTypeErr(v.ValueType)
	}
	word := binary.BigEndian.Uint32(v.Bytes)
	switch word {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &sane.DecodeError{Kind: sane.ErrInvalidBool, Word: word}
	}
}

// ToInt32 returns v's value as a single int32.
func (v OptionValue) ToInt32() (int32, error) {
	if v.ValueType != sane.ValueTypeInt || len(v.Bytes) != 4 {
		return 0, invalidOptionTypeErr(v.ValueType)
	}
	return int32(binary.BigEndian.Uint32(v.Bytes)), nil
}

// ToInt32List returns v's value as a slice of int32.
func (v OptionValue) ToInt32List() ([]int32, error) {
	if v.ValueType != sane.ValueTypeInt || len(v.Bytes)%4 != 0 {
		return nil, invalidOptionTypeErr(v.ValueType)
	}
	out := make([]int32, len(v.Bytes)/4)
	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(v.Bytes[i*4:]))
	}
	return out, nil
}

// ToFixed returns v's value as a single Fixed.
func (v OptionValue) ToFixed() (sane.Fixed, error) {
	if v.ValueType != sane.ValueTypeFixed || len(v.Bytes) != 4 {
		return 0, invalidOptionTypeErr(v.ValueType)
	}
	return sane.Fixed(int32(binary.BigEndian.Uint32(v.Bytes))), nil
}

// ToFixedList returns v's value as a slice of Fixed.
func (v OptionValue) ToFixedList() ([]sane.Fixed, error) {
	if v.ValueType != sane.ValueTypeFixed || len(v.Bytes)%4 != 0 {
		return nil, invalidOptionTypeErr(v.ValueType)
	}
	out := make([]sane.Fixed, len(v.Bytes)/4)
	for i := range out {
		out[i] = sane.Fixed(int32(binary.BigEndian.Uint32(v.Bytes[i*4:])))
	}
	return out, nil
}

// ToCString returns v's value as a Go string, truncated at the first
// NUL.
func (v OptionValue) ToCString() (string, error) {
	if v.ValueType != sane.ValueTypeString {
		return "", invalidOptionTypeErr(v.ValueType)
	}
	if len(v.Bytes) == 0 {
		return "", nil
	}
	idx := bytes.IndexByte(v.Bytes, 0)
	if idx < 0 {
		return "", newInvalidString()
	}
	return string(v.Bytes[:idx]), nil
}

func newInvalidString() error { return &sane.DecodeError{Kind: sane.ErrInvalidString} }

func invalidOptionTypeErr(vt sane.ValueType) error {
	return &sane.DecodeError{Kind: sane.ErrInvalidOptionType, Word: uint32(vt)}
}

// Encode writes v: value_type, then the per-type size/count preamble,
// then the raw bytes.
func (v OptionValue) Encode(w *wire.Writer) error {
	if err := w.WriteWord(sane.Word(v.ValueType)); err != nil {
		return err
	}
	switch v.ValueType {
	case sane.ValueTypeBool, sane.ValueTypeInt, sane.ValueTypeFixed:
		if err := w.WriteSize(len(v.Bytes)); err != nil {
			return err
		}
		if err := w.WriteSize(len(v.Bytes) / 4); err != nil {
			return err
		}
		return w.WriteBytes(v.Bytes)
	case sane.ValueTypeString:
		if err := w.WriteSize(len(v.Bytes)); err != nil {
			return err
		}
		return w.WriteBytes(v.Bytes)
	case sane.ValueTypeButton:
		return w.WriteSize(0)
	default:
		return &sane.EncodeError{Kind: sane.ErrSizeOverflow, Size: uint64(v.ValueType)}
	}
}

// DecodeOptionValue reads an OptionValue, dispatching on the leading
// value_type word.
func DecodeOptionValue(r *wire.Reader) (OptionValue, error) {
	vtWord, err := r.ReadWord()
	if err != nil {
		return OptionValue{}, err
	}
	vt := sane.ValueType(vtWord)
	switch vt {
	case sane.ValueTypeBool:
		size, count, err := readSizeCount(r)
		if err != nil {
			return OptionValue{}, err
		}
		if size != 4 || count != 1 {
			return OptionValue{}, invalidOptionTypeErr(vt)
		}
		b, err := r.ReadBytes(size)
		if err != nil {
			return OptionValue{}, err
		}
		return OptionValue{ValueType: vt, Bytes: b}, nil

	case sane.ValueTypeInt, sane.ValueTypeFixed:
		size, count, err := readSizeCount(r)
		if err != nil {
			return OptionValue{}, err
		}
		if size < 0 || size%4 != 0 || count != size/4 {
			return OptionValue{}, invalidOptionTypeErr(vt)
		}
		b, err := r.ReadBytes(size)
		if err != nil {
			return OptionValue{}, err
		}
		return OptionValue{ValueType: vt, Bytes: b}, nil

	case sane.ValueTypeString:
		size, err := r.ReadSize()
		if err != nil {
			return OptionValue{}, err
		}
		if size == 0 {
			return OptionValue{ValueType: vt}, nil
		}
		b, err := r.ReadBytes(size)
		if err != nil {
			return OptionValue{}, err
		}
		if bytes.IndexByte(b, 0) < 0 {
			return OptionValue{}, invalidOptionTypeErr(vt)
		}
		return OptionValue{ValueType: vt, Bytes: b}, nil

	case sane.ValueTypeButton:
		size, err := r.ReadSize()
		if err != nil {
			return OptionValue{}, err
		}
		if size != 0 {
			return OptionValue{}, invalidOptionTypeErr(vt)
		}
		return OptionValue{ValueType: vt}, nil

	default:
		return OptionValue{}, &sane.DecodeError{Kind: sane.ErrInvalidValueType, Word: uint32(vtWord)}
	}
}

func readSizeCount(r *wire.Reader) (size, count int, err error) {
	size, err = r.ReadSize()
	if err != nil {
		return 0, 0, err
	}
	count, err = r.ReadSize()
	if err != nil {
		return 0, 0, err
	}
	return size, count, nil
}

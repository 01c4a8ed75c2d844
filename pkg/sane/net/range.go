package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// Range is a constrained value's legal [Min, Max] interval with a
// quantization step. Whether Min/Max/Quant are interpreted as Int or
// Fixed depends on the enclosing option's ValueType; the wire form is
// identical either way, so Range stores the raw Word bits.
type Range struct {
	Min, Max, Quant sane.Word
}

// DecodeRange reads a Range: three consecutive words, min/max/quant.
func DecodeRange(r *wire.Reader) (Range, error) {
	min, err := r.ReadWord()
	if err != nil {
		return Range{}, err
	}
	max, err := r.ReadWord()
	if err != nil {
		return Range{}, err
	}
	quant, err := r.ReadWord()
	if err != nil {
		return Range{}, err
	}
	return Range{Min: min, Max: max, Quant: quant}, nil
}

// Encode writes r.
func (r Range) Encode(w *wire.Writer) error {
	if err := w.WriteWord(r.Min); err != nil {
		return err
	}
	if err := w.WriteWord(r.Max); err != nil {
		return err
	}
	return w.WriteWord(r.Quant)
}

// IntRange returns r reinterpreted as a signed-integer range.
func (r Range) IntRange() (min, max, quant sane.Int) {
	return sane.Int(int32(r.Min)), sane.Int(int32(r.Max)), sane.Int(int32(r.Quant))
}

// FixedRange returns r reinterpreted as a fixed-point range.
func (r Range) FixedRange() (min, max, quant sane.Fixed) {
	return sane.Fixed(int32(r.Min)), sane.Fixed(int32(r.Max)), sane.Fixed(int32(r.Quant))
}

// NewIntRange builds a Range from a signed-integer interval.
func NewIntRange(min, max, quant sane.Int) Range {
	return Range{Min: sane.Word(uint32(min)), Max: sane.Word(uint32(max)), Quant: sane.Word(uint32(quant))}
}

// NewFixedRange builds a Range from a fixed-point interval.
func NewFixedRange(min, max, quant sane.Fixed) Range {
	return Range{Min: sane.Word(uint32(min)), Max: sane.Word(uint32(max)), Quant: sane.Word(uint32(quant))}
}

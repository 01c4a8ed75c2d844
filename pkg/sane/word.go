package sane

import "fmt"

// Word is the universal 32-bit wire primitive. Every scalar and every
// enumeration on the SANE wire is, underneath, a Word: four bytes,
// big-endian.
type Word uint32

// Bool is a Word restricted to {0, 1} at decode time. The zero value is
// false.
type Bool bool

// Int is a Word reinterpreted as a two's-complement signed 32-bit
// integer.
type Int int32

// Fixed is a Q16.16 signed fixed-point number: the high 16 bits (as a
// signed quantity) are the whole part, the low 16 bits are the
// fractional part in units of 1/65536.
type Fixed int32

// NewFixed packs a signed whole part and an unsigned fractional count
// (0..65535, in units of 1/65536) into a Fixed.
func NewFixed(whole int16, frac65536ths uint16) Fixed {
	return Fixed(int32(whole)<<16 | int32(frac65536ths))
}

// AsFloat64 returns the fixed-point value as a float64.
func (f Fixed) AsFloat64() float64 {
	return float64(int32(f)) / 65536.0
}

// Whole returns the signed whole part of f.
func (f Fixed) Whole() int16 {
	return int16(int32(f) >> 16)
}

// Frac returns the unsigned fractional part of f, in units of 1/65536.
func (f Fixed) Frac() uint16 {
	return uint16(uint32(f) & 0xffff)
}

// String reproduces the reference implementation's exact debug format:
// SANE_Fixed(<whole>.0) when there is no fractional part, or
// SANE_Fixed(<whole>.<fracdigits>) with the fractional part expanded as
// an exact decimal (frac * 10^16 / 2^16, zero-padded to 16 digits, with
// trailing zeros trimmed).
func (f Fixed) String() string {
	whole := f.Whole()
	frac := f.Frac()
	if frac == 0 {
		return fmt.Sprintf("SANE_Fixed(%d.0)", whole)
	}
	// 152587890625 == 10^16 / 2^16, kept exact because frac < 2^16.
	fracDecimal := uint64(frac) * 152587890625
	digits := fmt.Sprintf("%016d", fracDecimal)
	for len(digits) > 1 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	return fmt.Sprintf("SANE_Fixed(%d.%s)", whole, digits)
}

package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// OptionDescriptorView is the borrowed presentation of an
// OptionDescriptor.
type OptionDescriptorView struct {
	Name, Title, Description string
	ValueType                sane.ValueType
	Unit                      sane.Unit
	Size                      sane.Int
	Capabilities              sane.Capabilities
	Constraint                Constraint
}

// OptionDescriptorBuf is the owned presentation; it dereferences to an
// OptionDescriptorView through embedding.
type OptionDescriptorBuf struct {
	OptionDescriptorView
}

// View returns the borrowed view of b.
func (b OptionDescriptorBuf) View() OptionDescriptorView { return b.OptionDescriptorView }

// Equal reports whether v and other describe the same option.
func (v OptionDescriptorView) Equal(other OptionDescriptorView) bool {
	return v.Name == other.Name &&
		v.Title == other.Title &&
		v.Description == other.Description &&
		v.ValueType == other.ValueType &&
		v.Unit == other.Unit &&
		v.Size == other.Size &&
		v.Capabilities == other.Capabilities &&
		v.Constraint.Equal(other.Constraint)
}

// NewOptionDescriptorBuf builds an owned OptionDescriptor. Callers are
// responsible for ensuring constraint is legal for valueType;
// DecodeOptionDescriptor enforces this on the wire by construction
// (decodeConstraint only ever produces a Kind its ValueType branch
// allows), but this constructor trusts the caller, matching the
// reference implementation's builder-style API.
func NewOptionDescriptorBuf(
	name, title, description string,
	valueType sane.ValueType,
	unit sane.Unit,
	size sane.Int,
	capabilities sane.Capabilities,
	constraint Constraint,
) OptionDescriptorBuf {
	// The Buf owns its lists: copy them so later changes to the caller's
	// slices do not show through.
	constraint.IntList = append([]sane.Int(nil), constraint.IntList...)
	constraint.FixedList = append([]sane.Fixed(nil), constraint.FixedList...)
	constraint.StringList = append([]string(nil), constraint.StringList...)
	return OptionDescriptorBuf{OptionDescriptorView{
		Name:         name,
		Title:        title,
		Description:  description,
		ValueType:    valueType,
		Unit:         unit,
		Size:         size,
		Capabilities: capabilities,
		Constraint:   constraint,
	}}
}

// Encode writes v, dispatching the constraint encoding on v.Constraint.Kind.
func (v OptionDescriptorView) Encode(w *wire.Writer) error {
	if err := w.WriteCString(v.Name); err != nil {
		return err
	}
	if err := w.WriteCString(v.Title); err != nil {
		return err
	}
	if err := w.WriteCString(v.Description); err != nil {
		return err
	}
	if err := w.WriteWord(sane.Word(v.ValueType)); err != nil {
		return err
	}
	if err := w.WriteWord(sane.Word(v.Unit)); err != nil {
		return err
	}
	if err := w.WriteInt(v.Size); err != nil {
		return err
	}
	if err := w.WriteWord(sane.Word(v.Capabilities)); err != nil {
		return err
	}
	return encodeConstraint(w, v.Constraint)
}

func encodeConstraint(w *wire.Writer, c Constraint) error {
	switch c.Kind {
	case ConstraintNone:
		return w.WriteWord(sane.Word(sane.ConstraintTypeNone))

	case ConstraintIntRange, ConstraintFixedRange:
		if err := w.WriteWord(sane.Word(sane.ConstraintTypeRange)); err != nil {
			return err
		}
		if err := w.WriteNullFlag(false); err != nil {
			return err
		}
		return c.Range.Encode(w)

	case ConstraintIntList:
		if err := w.WriteWord(sane.Word(sane.ConstraintTypeWordList)); err != nil {
			return err
		}
		n := len(c.IntList)
		if err := w.WriteSize(n + 1); err != nil {
			return err
		}
		if err := w.WriteSize(n); err != nil {
			return err
		}
		for _, v := range c.IntList {
			if err := w.WriteInt(v); err != nil {
				return err
			}
		}
		return nil

	case ConstraintFixedList:
		if err := w.WriteWord(sane.Word(sane.ConstraintTypeWordList)); err != nil {
			return err
		}
		n := len(c.FixedList)
		if err := w.WriteSize(n + 1); err != nil {
			return err
		}
		if err := w.WriteSize(n); err != nil {
			return err
		}
		for _, v := range c.FixedList {
			if err := w.WriteFixed(v); err != nil {
				return err
			}
		}
		return nil

	case ConstraintStringList:
		if err := w.WriteWord(sane.Word(sane.ConstraintTypeStringList)); err != nil {
			return err
		}
		n := len(c.StringList)
		if err := w.WriteSize(n + 1); err != nil {
			return err
		}
		for _, s := range c.StringList {
			if err := w.WriteCStringNonNull(s); err != nil {
				return err
			}
		}
		return w.WriteCStringListTerminator()

	default:
		return w.WriteWord(sane.Word(sane.ConstraintTypeNone))
	}
}

// DecodeOptionDescriptor reads an OptionDescriptor, case-splitting the
// constraint decode on the just-decoded ValueType per the legal-variant
// table in §3.3.
func DecodeOptionDescriptor(r *wire.Reader) (OptionDescriptorBuf, error) {
	name, err := r.ReadCString()
	if err != nil {
		return OptionDescriptorBuf{}, err
	}
	title, err := r.ReadCString()
	if err != nil {
		return OptionDescriptorBuf{}, err
	}
	description, err := r.ReadCString()
	if err != nil {
		return OptionDescriptorBuf{}, err
	}
	valueTypeWord, err := r.ReadWord()
	if err != nil {
		return OptionDescriptorBuf{}, err
	}
	valueType := sane.ValueType(valueTypeWord)
	unitWord, err := r.ReadWord()
	if err != nil {
		return OptionDescriptorBuf{}, err
	}
	size, err := r.ReadInt()
	if err != nil {
		return OptionDescriptorBuf{}, err
	}
	capsWord, err := r.ReadWord()
	if err != nil {
		return OptionDescriptorBuf{}, err
	}

	constraint, err := decodeConstraint(r, valueType)
	if err != nil {
		return OptionDescriptorBuf{}, err
	}

	return NewOptionDescriptorBuf(
		name, title, description,
		valueType,
		sane.Unit(unitWord),
		size,
		sane.Capabilities(capsWord),
		constraint,
	), nil
}

func decodeConstraint(r *wire.Reader, valueType sane.ValueType) (Constraint, error) {
	switch valueType {
	case sane.ValueTypeBool, sane.ValueTypeButton, sane.ValueTypeGroup:
		ctWord, err := r.ReadWord()
		if err != nil {
			return Constraint{}, err
		}
		if sane.ConstraintType(ctWord) != sane.ConstraintTypeNone {
			return Constraint{}, invalidConstraintErr(valueType, ctWord)
		}
		return Constraint{Kind: ConstraintNone}, nil

	case sane.ValueTypeInt:
		return decodeScalarListConstraint(r, valueType, true)

	case sane.ValueTypeFixed:
		return decodeScalarListConstraint(r, valueType, false)

	case sane.ValueTypeString:
		ctWord, err := r.ReadWord()
		if err != nil {
			return Constraint{}, err
		}
		switch sane.ConstraintType(ctWord) {
		case sane.ConstraintTypeNone:
			return Constraint{Kind: ConstraintNone}, nil
		case sane.ConstraintTypeStringList:
			lenPlusOne, err := r.ReadSize() // n+1 preamble, also the loop bound below
			if err != nil {
				return Constraint{}, err
			}
			var items []string
			for i := 0; i < lenPlusOne; i++ {
				s, isNull, err := r.ReadCStringOrNull()
				if err != nil {
					return Constraint{}, err
				}
				if isNull {
					break
				}
				items = append(items, s)
			}
			return Constraint{Kind: ConstraintStringList, StringList: items}, nil
		default:
			return Constraint{}, invalidConstraintErr(valueType, ctWord)
		}

	default:
		return Constraint{}, &sane.DecodeError{Kind: sane.ErrInvalidValueType, Word: uint32(valueType)}
	}
}

// decodeScalarListConstraint implements the shared INT/FIXED constraint
// decode: NONE, RANGE (nullable pointer, required non-null), or
// WORD_LIST (n+1 preamble discarded, then an authoritative n, then n
// words).
func decodeScalarListConstraint(r *wire.Reader, valueType sane.ValueType, isInt bool) (Constraint, error) {
	ctWord, err := r.ReadWord()
	if err != nil {
		return Constraint{}, err
	}
	switch sane.ConstraintType(ctWord) {
	case sane.ConstraintTypeNone:
		return Constraint{Kind: ConstraintNone}, nil

	case sane.ConstraintTypeRange:
		isNull, err := r.ReadNullFlag()
		if err != nil {
			return Constraint{}, err
		}
		if isNull {
			return Constraint{}, &sane.DecodeError{Kind: sane.ErrNullPtr}
		}
		rng, err := DecodeRange(r)
		if err != nil {
			return Constraint{}, err
		}
		if isInt {
			return Constraint{Kind: ConstraintIntRange, Range: rng}, nil
		}
		return Constraint{Kind: ConstraintFixedRange, Range: rng}, nil

	case sane.ConstraintTypeWordList:
		if _, err := r.ReadSize(); err != nil { // n+1 preamble, discarded
			return Constraint{}, err
		}
		n, err := r.ReadSize()
		if err != nil {
			return Constraint{}, err
		}
		if n < 0 || n > wire.MaxAlloc/4 {
			return Constraint{}, &sane.DecodeError{Kind: sane.ErrTryReserve, Word: uint32(n)}
		}
		if isInt {
			items := make([]sane.Int, 0, n)
			for i := 0; i < n; i++ {
				v, err := r.ReadInt()
				if err != nil {
					return Constraint{}, err
				}
				items = append(items, v)
			}
			return Constraint{Kind: ConstraintIntList, IntList: items}, nil
		}
		items := make([]sane.Fixed, 0, n)
		for i := 0; i < n; i++ {
			v, err := r.ReadFixed()
			if err != nil {
				return Constraint{}, err
			}
			items = append(items, v)
		}
		return Constraint{Kind: ConstraintFixedList, FixedList: items}, nil

	default:
		return Constraint{}, invalidConstraintErr(valueType, ctWord)
	}
}

func invalidConstraintErr(valueType sane.ValueType, constraintType sane.Word) error {
	return &sane.DecodeError{Kind: sane.ErrInvalidConstraint, A: uint32(valueType), B: uint32(constraintType)}
}

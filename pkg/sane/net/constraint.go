package net

import "github.com/jmillikin/go-sane-net/pkg/sane"

// ConstraintKind identifies which variant of Constraint is populated.
type ConstraintKind int

const (
	ConstraintNone ConstraintKind = iota
	ConstraintIntRange
	ConstraintFixedRange
	ConstraintIntList
	ConstraintFixedList
	ConstraintStringList
)

// Constraint is the tagged union of value-set restrictions an
// OptionDescriptor may carry. Which Kind values are legal depends on
// the descriptor's ValueType; decodeConstraint enforces this by
// construction, decoding only the Kind values each ValueType's wire
// branch allows.
type Constraint struct {
	Kind       ConstraintKind
	Range      Range
	IntList    []sane.Int
	FixedList  []sane.Fixed
	StringList []string
}

// Equal reports whether c and other represent the same constraint.
func (c Constraint) Equal(other Constraint) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case ConstraintNone:
		return true
	case ConstraintIntRange, ConstraintFixedRange:
		return c.Range == other.Range
	case ConstraintIntList:
		return intSliceEqual(c.IntList, other.IntList)
	case ConstraintFixedList:
		return fixedSliceEqual(c.FixedList, other.FixedList)
	case ConstraintStringList:
		return stringSliceEqual(c.StringList, other.StringList)
	default:
		return false
	}
}

func intSliceEqual(a, b []sane.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func fixedSliceEqual(a, b []sane.Fixed) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

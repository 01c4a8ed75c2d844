package net

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

func roundTripDescriptor(t *testing.T, d OptionDescriptorBuf) OptionDescriptorView {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, d.View().Encode(wire.NewWriter(&buf)))
	got, err := DecodeOptionDescriptor(wire.NewReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	return got.View()
}

func TestOptionDescriptorBoolNone(t *testing.T) {
	d := NewOptionDescriptorBuf("enable", "Enable", "", sane.ValueTypeBool, sane.UnitNone, 4, 0, Constraint{Kind: ConstraintNone})
	got := roundTripDescriptor(t, d)
	assert.True(t, d.View().Equal(got))
}

func TestOptionDescriptorIntRange(t *testing.T) {
	c := Constraint{Kind: ConstraintIntRange, Range: NewIntRange(0, 100, 1)}
	d := NewOptionDescriptorBuf("brightness", "Brightness", "", sane.ValueTypeInt, sane.UnitPercent, 4, 0, c)
	got := roundTripDescriptor(t, d)
	assert.True(t, d.View().Equal(got))
}

func TestOptionDescriptorIntList(t *testing.T) {
	c := Constraint{Kind: ConstraintIntList, IntList: []sane.Int{1, 2, 4, 8}}
	d := NewOptionDescriptorBuf("depth", "Depth", "", sane.ValueTypeInt, sane.UnitBit, 4, 0, c)
	got := roundTripDescriptor(t, d)
	assert.True(t, d.View().Equal(got))
}

func TestOptionDescriptorFixedRange(t *testing.T) {
	c := Constraint{Kind: ConstraintFixedRange, Range: NewFixedRange(sane.NewFixed(0, 0), sane.NewFixed(100, 0), sane.NewFixed(0, 1))}
	d := NewOptionDescriptorBuf("gamma", "Gamma", "", sane.ValueTypeFixed, sane.UnitNone, 4, 0, c)
	got := roundTripDescriptor(t, d)
	assert.True(t, d.View().Equal(got))
}

func TestOptionDescriptorFixedList(t *testing.T) {
	c := Constraint{Kind: ConstraintFixedList, FixedList: []sane.Fixed{sane.NewFixed(1, 0), sane.NewFixed(2, 0)}}
	d := NewOptionDescriptorBuf("zoom", "Zoom", "", sane.ValueTypeFixed, sane.UnitNone, 4, 0, c)
	got := roundTripDescriptor(t, d)
	assert.True(t, d.View().Equal(got))
}

func TestOptionDescriptorStringNone(t *testing.T) {
	d := NewOptionDescriptorBuf("mode", "Mode", "", sane.ValueTypeString, sane.UnitNone, 0, 0, Constraint{Kind: ConstraintNone})
	got := roundTripDescriptor(t, d)
	assert.True(t, d.View().Equal(got))
}

func TestOptionDescriptorStringList(t *testing.T) {
	c := Constraint{Kind: ConstraintStringList, StringList: []string{"Color", "Gray", ""}}
	d := NewOptionDescriptorBuf("mode", "Mode", "", sane.ValueTypeString, sane.UnitNone, 0, 0, c)
	got := roundTripDescriptor(t, d)
	assert.True(t, d.View().Equal(got))
}

func TestOptionDescriptorButtonAndGroup(t *testing.T) {
	btn := NewOptionDescriptorBuf("scan", "Scan", "", sane.ValueTypeButton, sane.UnitNone, 0, 0, Constraint{Kind: ConstraintNone})
	got := roundTripDescriptor(t, btn)
	assert.True(t, btn.View().Equal(got))

	grp := NewOptionDescriptorBuf("geometry", "Geometry", "", sane.ValueTypeGroup, sane.UnitNone, 0, 0, Constraint{Kind: ConstraintNone})
	got = roundTripDescriptor(t, grp)
	assert.True(t, grp.View().Equal(got))
}

func TestOptionDescriptorIllegalConstraintRejected(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, w.WriteCString("opt"))
	require.NoError(t, w.WriteCString("Opt"))
	require.NoError(t, w.WriteCString(""))
	require.NoError(t, w.WriteWord(sane.Word(sane.ValueTypeBool)))
	require.NoError(t, w.WriteWord(sane.Word(sane.UnitNone)))
	require.NoError(t, w.WriteInt(4))
	require.NoError(t, w.WriteWord(0))
	require.NoError(t, w.WriteWord(sane.Word(sane.ConstraintTypeRange))) // illegal for BOOL

	_, err := DecodeOptionDescriptor(wire.NewReader(bytes.NewReader(buf.Bytes())))
	require.Error(t, err)
	var decErr *sane.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, sane.ErrInvalidConstraint, decErr.Kind)
}

func TestOptionValueIntSizeMismatchRejected(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewWriter(&buf)
	require.NoError(t, w.WriteWord(sane.Word(sane.ValueTypeInt)))
	require.NoError(t, w.WriteSize(5)) // not a multiple of 4
	require.NoError(t, w.WriteSize(1))
	require.NoError(t, w.WriteBytes([]byte{1, 2, 3, 4, 5}))

	_, err := DecodeOptionValue(wire.NewReader(bytes.NewReader(buf.Bytes())))
	require.Error(t, err)
	var decErr *sane.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, sane.ErrInvalidOptionType, decErr.Kind)
}

func TestOptionValueAccessors(t *testing.T) {
	v := NewInt32ListValue([]int32{1, 2, 3})
	list, err := v.ToInt32List()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, list)

	s := NewCStringValue("hello")
	str, err := s.ToCString()
	require.NoError(t, err)
	assert.Equal(t, "hello", str)
}

func TestOptionValueFromCStringWithSizePanicsOnUndersize(t *testing.T) {
	assert.Panics(t, func() {
		NewCStringValueWithSize("toolong", 3)
	})
}

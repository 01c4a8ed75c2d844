package net

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

func TestInitRequestLiteralBytes(t *testing.T) {
	req := InitRequest{VersionCode: 0x11223344, Username: "aaa"}
	var buf bytes.Buffer
	require.NoError(t, req.Encode(wire.NewWriter(&buf)))

	want := []byte{
		0x00, 0x00, 0x00, 0x00, // procedure number: INIT
		0x11, 0x22, 0x33, 0x44, // version_code
		0x00, 0x00, 0x00, 0x04, // "aaa\0" length
		0x61, 0x61, 0x61, 0x00,
	}
	assert.Equal(t, want, buf.Bytes())

	got, err := DecodeInitRequest(wire.NewReader(bytes.NewReader(want)))
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

func TestInitReplyLiteralBytes(t *testing.T) {
	rep := InitReply{Status: sane.StatusAccessDenied, VersionCode: 0x11223344}
	var buf bytes.Buffer
	require.NoError(t, rep.Encode(wire.NewWriter(&buf)))

	want := []byte{
		0x00, 0x00, 0x00, 0x0B, // ACCESS_DENIED
		0x11, 0x22, 0x33, 0x44,
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestGetDevicesReplyLiteralBytes(t *testing.T) {
	rep := GetDevicesReply{
		Status: sane.StatusGood,
		Devices: []DeviceView{
			{Name: "device-name", Vendor: "device-vendor", Model: "device-model", Kind: "device-type"},
			{Name: "device-name-2", Vendor: "", Model: "", Kind: ""},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, rep.Encode(wire.NewWriter(&buf)))

	decoded, err := DecodeGetDevicesReply(wire.NewReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, rep, decoded)

	// len_plus_one == 3 immediately follows the status word.
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03}, buf.Bytes()[:8])
}

func TestControlOptionSetValueLiteralBytes(t *testing.T) {
	req := ControlOptionRequest{
		Handle: 0x11223344,
		Option: 0x55555555,
		Action: sane.ActionSetValue,
		Value:  NewInt32Value(int32(0x66778899)),
	}
	var buf bytes.Buffer
	require.NoError(t, req.Encode(wire.NewWriter(&buf)))

	want := []byte{
		0x00, 0x00, 0x00, 0x05, // CONTROL_OPTION
		0x11, 0x22, 0x33, 0x44, // handle
		0x55, 0x55, 0x55, 0x55, // option
		0x00, 0x00, 0x00, 0x01, // action = SET_VALUE
		0x00, 0x00, 0x00, 0x01, // value_type = INT
		0x00, 0x00, 0x00, 0x04, // size
		0x00, 0x00, 0x00, 0x01, // count
		0x66, 0x77, 0x88, 0x99, // value
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestControlOptionSetAutoOmitsValue(t *testing.T) {
	req := ControlOptionRequest{
		Handle: 1,
		Option: 2,
		Action: sane.ActionSetAuto,
	}
	var buf bytes.Buffer
	require.NoError(t, req.Encode(wire.NewWriter(&buf)))

	// procedure + handle + option + action = 4 words, nothing more.
	assert.Len(t, buf.Bytes(), 16)

	got, err := DecodeControlOptionRequest(wire.NewReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, sane.ActionSetAuto, got.Action)
	assert.Equal(t, OptionValue{}, got.Value)
}

func TestStartReplyLiteralBytes(t *testing.T) {
	rep := StartReply{
		Status:    sane.StatusAccessDenied,
		Port:      0x2233,
		ByteOrder: sane.ByteOrderLittleEndian,
		Resource:  "start-resource",
	}
	var buf bytes.Buffer
	require.NoError(t, rep.Encode(wire.NewWriter(&buf)))

	want := []byte{
		0x00, 0x00, 0x00, 0x0B, // status
		0x00, 0x00, 0x22, 0x33, // port
		0x00, 0x00, 0x12, 0x34, // byte order
		0x00, 0x00, 0x00, 0x0F, // "start-resource\0" length (15)
	}
	want = append(want, []byte("start-resource")...)
	want = append(want, 0x00)
	assert.Equal(t, want, buf.Bytes())

	decoded, err := DecodeStartReply(wire.NewReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, rep, decoded)
}

func TestCloseAndCancelDummyReply(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CloseReply{}.Encode(wire.NewWriter(&buf)))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes())

	_, err := DecodeCloseReply(wire.NewReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, CancelReply{}.Encode(wire.NewWriter(&buf)))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes())

	_, err = DecodeCancelReply(wire.NewReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
}

func TestProcedureNumberMismatchIsError(t *testing.T) {
	var buf bytes.Buffer
	req := OpenRequest{DeviceName: "x"}
	require.NoError(t, req.Encode(wire.NewWriter(&buf)))

	_, err := DecodeCloseRequest(wire.NewReader(bytes.NewReader(buf.Bytes())))
	require.Error(t, err)
	var decErr *sane.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, sane.ErrInvalidProcedureNumber, decErr.Kind)
}

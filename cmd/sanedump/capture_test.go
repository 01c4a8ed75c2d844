package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/net"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

func writeCaptureRecord(t *testing.T, buf *bytes.Buffer, dir captureDirection, proc sane.ProcedureNumber, payload []byte) {
	t.Helper()
	w := wire.NewWriter(buf)
	require.NoError(t, w.WriteWord(sane.Word(dir)))
	require.NoError(t, w.WriteWord(sane.Word(proc)))
	require.NoError(t, w.WriteSize(len(payload)))
	require.NoError(t, w.WriteBytes(payload))
}

func TestReadCaptureRecordsRoundTrip(t *testing.T) {
	var reqBuf bytes.Buffer
	req := net.InitRequest{VersionCode: sane.VersionCode, Username: "tester"}
	require.NoError(t, req.Encode(wire.NewWriter(&reqBuf)))

	var repBuf bytes.Buffer
	rep := net.InitReply{Status: sane.StatusGood, VersionCode: sane.VersionCode}
	require.NoError(t, rep.Encode(wire.NewWriter(&repBuf)))

	var capture bytes.Buffer
	writeCaptureRecord(t, &capture, captureRequest, sane.ProcedureInit, reqBuf.Bytes())
	writeCaptureRecord(t, &capture, captureReply, sane.ProcedureInit, repBuf.Bytes())

	records, err := readCaptureRecords(&capture)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, captureRequest, records[0].Direction)
	assert.Equal(t, sane.ProcedureInit, records[0].Procedure)
	assert.Equal(t, captureReply, records[1].Direction)
}

func TestDecodeRecordDispatchesRequestAndReply(t *testing.T) {
	var reqBuf bytes.Buffer
	req := net.OpenRequest{DeviceName: "test:0"}
	require.NoError(t, req.Encode(wire.NewWriter(&reqBuf)))

	msg, err := decodeRecord(captureRecord{
		Direction: captureRequest,
		Procedure: sane.ProcedureOpen,
		Payload:   reqBuf.Bytes(),
	})
	require.NoError(t, err)
	assert.Equal(t, "request", msg.Direction)
	assert.Contains(t, msg.Summary, "test:0")

	var repBuf bytes.Buffer
	rep := net.OpenReply{Status: sane.StatusGood, Handle: 7}
	require.NoError(t, rep.Encode(wire.NewWriter(&repBuf)))

	msg, err = decodeRecord(captureRecord{
		Direction: captureReply,
		Procedure: sane.ProcedureOpen,
		Payload:   repBuf.Bytes(),
	})
	require.NoError(t, err)
	assert.Equal(t, "reply", msg.Direction)
}

func TestDecodeRecordUnknownProcedure(t *testing.T) {
	_, err := decodeRecord(captureRecord{
		Direction: captureRequest,
		Procedure: sane.ProcedureNumber(0xFFFF),
		Payload:   nil,
	})
	require.Error(t, err)
}

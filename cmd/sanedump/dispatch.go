package main

import (
	"bytes"
	"fmt"

	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/metrics"
	"github.com/jmillikin/go-sane-net/pkg/sane/net"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// decodedMessage is what one capture record renders as in the
// sanedump output: which procedure it was, which direction, and a
// %+v dump (field names and values) of the decoded struct.
type decodedMessage struct {
	Procedure string
	Direction string
	Summary   string
}

// decodeRecord decodes a single captureRecord against the message type
// named by its Procedure and Direction fields, recording Prometheus
// counters and a debug log line for the attempt via pkg/sane/metrics.
func decodeRecord(rec captureRecord) (decodedMessage, error) {
	procName := rec.Procedure.String()
	direction := "request"
	if rec.Direction == captureReply {
		direction = "reply"
	}

	cr := metrics.NewCountingReader(bytes.NewReader(rec.Payload))
	r := cr.WireReader()

	summary, err := dispatchDecode(r, rec.Procedure, rec.Direction)
	metrics.ObserveDecode(procName, cr.BytesRead(), err)
	if err != nil {
		return decodedMessage{}, fmt.Errorf("decoding %s %s: %w", procName, direction, err)
	}

	return decodedMessage{Procedure: procName, Direction: direction, Summary: summary}, nil
}

func dispatchDecode(r *wire.Reader, proc sane.ProcedureNumber, dir captureDirection) (string, error) {
	if dir == captureRequest {
		return dispatchDecodeRequest(r, proc)
	}
	return dispatchDecodeReply(r, proc)
}

func dispatchDecodeRequest(r *wire.Reader, proc sane.ProcedureNumber) (string, error) {
	switch proc {
	case sane.ProcedureInit:
		v, err := net.DecodeInitRequest(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureGetDevices:
		v, err := net.DecodeGetDevicesRequest(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureOpen:
		v, err := net.DecodeOpenRequest(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureClose:
		v, err := net.DecodeCloseRequest(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureGetOptionDescriptors:
		v, err := net.DecodeGetOptionDescriptorsRequest(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureControlOption:
		v, err := net.DecodeControlOptionRequest(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureGetParameters:
		v, err := net.DecodeGetParametersRequest(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureStart:
		v, err := net.DecodeStartRequest(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureCancel:
		v, err := net.DecodeCancelRequest(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureAuthorize:
		v, err := net.DecodeAuthorizeRequest(r)
		return fmt.Sprintf("%+v", v), err
	default:
		return "", fmt.Errorf("unknown procedure number %s", proc)
	}
}

func dispatchDecodeReply(r *wire.Reader, proc sane.ProcedureNumber) (string, error) {
	switch proc {
	case sane.ProcedureInit:
		v, err := net.DecodeInitReply(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureGetDevices:
		v, err := net.DecodeGetDevicesReply(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureOpen:
		v, err := net.DecodeOpenReply(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureClose:
		v, err := net.DecodeCloseReply(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureGetOptionDescriptors:
		v, err := net.DecodeGetOptionDescriptorsReply(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureControlOption:
		v, err := net.DecodeControlOptionReply(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureGetParameters:
		v, err := net.DecodeGetParametersReply(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureStart:
		v, err := net.DecodeStartReply(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureCancel:
		v, err := net.DecodeCancelReply(r)
		return fmt.Sprintf("%+v", v), err
	case sane.ProcedureAuthorize:
		v, err := net.DecodeAuthorizeReply(r)
		return fmt.Sprintf("%+v", v), err
	default:
		return "", fmt.Errorf("unknown procedure number %s", proc)
	}
}

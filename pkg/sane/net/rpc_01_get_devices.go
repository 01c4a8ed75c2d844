package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// GetDevicesRequest is the (empty) body of the GET_DEVICES RPC.
type GetDevicesRequest struct{}

// Encode writes the ProcedureNumber; GET_DEVICES carries no payload.
func (req GetDevicesRequest) Encode(w *wire.Writer) error {
	return writeProcedure(w, sane.ProcedureGetDevices)
}

// DecodeGetDevicesRequest reads a GET_DEVICES request.
func DecodeGetDevicesRequest(r *wire.Reader) (GetDevicesRequest, error) {
	if err := expectProcedure(r, sane.ProcedureGetDevices); err != nil {
		return GetDevicesRequest{}, err
	}
	return GetDevicesRequest{}, nil
}

// GetDevicesReply carries the status and the list of devices known to
// the server.
type GetDevicesReply struct {
	Status  sane.Status
	Devices []DeviceView
}

// Encode writes rep, using the nullable-pointer-terminated array
// framing for the device list.
func (rep GetDevicesReply) Encode(w *wire.Writer) error {
	if err := w.WriteWord(sane.Word(rep.Status)); err != nil {
		return err
	}
	return encodeNullableArray(w, rep.Devices, func(w *wire.Writer, d DeviceView) error {
		return d.Encode(w)
	})
}

// DecodeGetDevicesReply reads a GET_DEVICES reply.
func DecodeGetDevicesReply(r *wire.Reader) (GetDevicesReply, error) {
	status, err := r.ReadWord()
	if err != nil {
		return GetDevicesReply{}, err
	}
	devices, err := decodeNullableArray(r, func(r *wire.Reader) (DeviceView, error) {
		buf, err := DecodeDevice(r)
		if err != nil {
			return DeviceView{}, err
		}
		return buf.View(), nil
	})
	if err != nil {
		return GetDevicesReply{}, err
	}
	return GetDevicesReply{Status: sane.Status(status), Devices: devices}, nil
}

package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// OpenRequest asks the server to open the named device.
type OpenRequest struct {
	DeviceName string
}

// Encode writes req.
func (req OpenRequest) Encode(w *wire.Writer) error {
	if err := writeProcedure(w, sane.ProcedureOpen); err != nil {
		return err
	}
	return w.WriteCString(req.DeviceName)
}

// DecodeOpenRequest reads an OPEN request.
func DecodeOpenRequest(r *wire.Reader) (OpenRequest, error) {
	if err := expectProcedure(r, sane.ProcedureOpen); err != nil {
		return OpenRequest{}, err
	}
	name, err := r.ReadCString()
	if err != nil {
		return OpenRequest{}, err
	}
	return OpenRequest{DeviceName: name}, nil
}

// OpenReply carries the result of OPEN: a status, a Handle valid for
// the lifetime of the connection (or until CLOSE), and an optional
// authorization resource name (non-empty when the device requires an
// AUTHORIZE round-trip before use).
type OpenReply struct {
	Status   sane.Status
	Handle   Handle
	Resource string
}

// Encode writes rep.
func (rep OpenReply) Encode(w *wire.Writer) error {
	if err := w.WriteWord(sane.Word(rep.Status)); err != nil {
		return err
	}
	if err := rep.Handle.Encode(w); err != nil {
		return err
	}
	return w.WriteCString(rep.Resource)
}

// DecodeOpenReply reads an OPEN reply.
func DecodeOpenReply(r *wire.Reader) (OpenReply, error) {
	status, err := r.ReadWord()
	if err != nil {
		return OpenReply{}, err
	}
	handle, err := DecodeHandle(r)
	if err != nil {
		return OpenReply{}, err
	}
	resource, err := r.ReadCString()
	if err != nil {
		return OpenReply{}, err
	}
	return OpenReply{Status: sane.Status(status), Handle: handle, Resource: resource}, nil
}

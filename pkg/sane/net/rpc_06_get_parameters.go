package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// GetParametersRequest asks the server for the current scan
// parameters of an opened device.
type GetParametersRequest struct {
	Handle Handle
}

// Encode writes req.
func (req GetParametersRequest) Encode(w *wire.Writer) error {
	if err := writeProcedure(w, sane.ProcedureGetParameters); err != nil {
		return err
	}
	return req.Handle.Encode(w)
}

// DecodeGetParametersRequest reads a GET_PARAMETERS request.
func DecodeGetParametersRequest(r *wire.Reader) (GetParametersRequest, error) {
	if err := expectProcedure(r, sane.ProcedureGetParameters); err != nil {
		return GetParametersRequest{}, err
	}
	handle, err := DecodeHandle(r)
	if err != nil {
		return GetParametersRequest{}, err
	}
	return GetParametersRequest{Handle: handle}, nil
}

// GetParametersReply carries the result of GET_PARAMETERS.
type GetParametersReply struct {
	Status     sane.Status
	Parameters Parameters
}

// Encode writes rep.
func (rep GetParametersReply) Encode(w *wire.Writer) error {
	if err := w.WriteWord(sane.Word(rep.Status)); err != nil {
		return err
	}
	return rep.Parameters.Encode(w)
}

// DecodeGetParametersReply reads a GET_PARAMETERS reply.
func DecodeGetParametersReply(r *wire.Reader) (GetParametersReply, error) {
	status, err := r.ReadWord()
	if err != nil {
		return GetParametersReply{}, err
	}
	params, err := DecodeParameters(r)
	if err != nil {
		return GetParametersReply{}, err
	}
	return GetParametersReply{Status: sane.Status(status), Parameters: params}, nil
}

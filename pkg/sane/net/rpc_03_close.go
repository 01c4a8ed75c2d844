package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// CloseRequest asks the server to close a previously opened device.
type CloseRequest struct {
	Handle Handle
}

// Encode writes req.
func (req CloseRequest) Encode(w *wire.Writer) error {
	if err := writeProcedure(w, sane.ProcedureClose); err != nil {
		return err
	}
	return req.Handle.Encode(w)
}

// DecodeCloseRequest reads a CLOSE request.
func DecodeCloseRequest(r *wire.Reader) (CloseRequest, error) {
	if err := expectProcedure(r, sane.ProcedureClose); err != nil {
		return CloseRequest{}, err
	}
	handle, err := DecodeHandle(r)
	if err != nil {
		return CloseRequest{}, err
	}
	return CloseRequest{Handle: handle}, nil
}

// CloseReply is the (content-free) reply to CLOSE: a single dummy Word,
// always 0.
type CloseReply struct{}

// Encode writes the dummy Word.
func (CloseReply) Encode(w *wire.Writer) error {
	return writeDummy(w)
}

// DecodeCloseReply reads and discards the dummy Word.
func DecodeCloseReply(r *wire.Reader) (CloseReply, error) {
	if err := readDummy(r); err != nil {
		return CloseReply{}, err
	}
	return CloseReply{}, nil
}

package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// CancelRequest asks the server to cancel an in-progress (or not yet
// started) scan.
type CancelRequest struct {
	Handle Handle
}

// Encode writes req.
func (req CancelRequest) Encode(w *wire.Writer) error {
	if err := writeProcedure(w, sane.ProcedureCancel); err != nil {
		return err
	}
	return req.Handle.Encode(w)
}

// DecodeCancelRequest reads a CANCEL request.
func DecodeCancelRequest(r *wire.Reader) (CancelRequest, error) {
	if err := expectProcedure(r, sane.ProcedureCancel); err != nil {
		return CancelRequest{}, err
	}
	handle, err := DecodeHandle(r)
	if err != nil {
		return CancelRequest{}, err
	}
	return CancelRequest{Handle: handle}, nil
}

// CancelReply is the (content-free) reply to CANCEL: a single dummy
// Word, always 0.
type CancelReply struct{}

// Encode writes the dummy Word.
func (CancelReply) Encode(w *wire.Writer) error {
	return writeDummy(w)
}

// DecodeCancelReply reads and discards the dummy Word.
func DecodeCancelReply(r *wire.Reader) (CancelReply, error) {
	if err := readDummy(r); err != nil {
		return CancelReply{}, err
	}
	return CancelReply{}, nil
}

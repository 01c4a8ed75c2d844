package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// expectProcedure reads the leading ProcedureNumber of a request and
// requires it to equal want. Each message type in this package exposes
// its own typed Decode*Request function, so the expected procedure
// number is always statically known at the call site; validating it
// here is free and catches a misrouted or desynchronized stream early,
// rather than silently decoding the wrong payload shape.
func expectProcedure(r *wire.Reader, want sane.ProcedureNumber) error {
	got, err := r.ReadWord()
	if err != nil {
		return err
	}
	if sane.ProcedureNumber(got) != want {
		return &sane.DecodeError{Kind: sane.ErrInvalidProcedureNumber, A: uint32(got), B: uint32(want)}
	}
	return nil
}

func writeProcedure(w *wire.Writer, p sane.ProcedureNumber) error {
	return w.WriteWord(sane.Word(p))
}

// readDummy reads the zero Word that terminates CLOSE and CANCEL
// replies.
func readDummy(r *wire.Reader) error {
	_, err := r.ReadWord()
	return err
}

func writeDummy(w *wire.Writer) error {
	return w.WriteWord(0)
}

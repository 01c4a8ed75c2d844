package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// Info is the bitset returned by CONTROL_OPTION describing
// side effects the set had.
type Info sane.Word

const (
	InfoInexact       Info = 1 << 0
	InfoReloadOptions Info = 1 << 1
	InfoReloadParams  Info = 1 << 2
)

// ControlOptionRequest asks the server to get, set, or auto-set the
// value of one option on an opened device. Value is only meaningful
// (and only encoded) when Action is not ActionSetAuto.
type ControlOptionRequest struct {
	Handle Handle
	Option sane.Word
	Action sane.Action
	Value  OptionValue
}

// Encode writes req, omitting Value's wire form when Action is
// ActionSetAuto.
func (req ControlOptionRequest) Encode(w *wire.Writer) error {
	if err := writeProcedure(w, sane.ProcedureControlOption); err != nil {
		return err
	}
	if err := req.Handle.Encode(w); err != nil {
		return err
	}
	if err := w.WriteWord(req.Option); err != nil {
		return err
	}
	if err := w.WriteWord(sane.Word(req.Action)); err != nil {
		return err
	}
	if req.Action == sane.ActionSetAuto {
		return nil
	}
	return req.Value.Encode(w)
}

// DecodeControlOptionRequest reads a CONTROL_OPTION request.
func DecodeControlOptionRequest(r *wire.Reader) (ControlOptionRequest, error) {
	if err := expectProcedure(r, sane.ProcedureControlOption); err != nil {
		return ControlOptionRequest{}, err
	}
	handle, err := DecodeHandle(r)
	if err != nil {
		return ControlOptionRequest{}, err
	}
	option, err := r.ReadWord()
	if err != nil {
		return ControlOptionRequest{}, err
	}
	actionWord, err := r.ReadWord()
	if err != nil {
		return ControlOptionRequest{}, err
	}
	action := sane.Action(actionWord)
	if action == sane.ActionSetAuto {
		return ControlOptionRequest{Handle: handle, Option: option, Action: action}, nil
	}
	value, err := DecodeOptionValue(r)
	if err != nil {
		return ControlOptionRequest{}, err
	}
	return ControlOptionRequest{Handle: handle, Option: option, Action: action, Value: value}, nil
}

// ControlOptionReply carries the result of CONTROL_OPTION: a status,
// the Info side-effect bitset, the option's resulting value, and an
// optional authorization resource name.
type ControlOptionReply struct {
	Status   sane.Status
	Info     Info
	Value    OptionValue
	Resource string
}

// Encode writes rep.
func (rep ControlOptionReply) Encode(w *wire.Writer) error {
	if err := w.WriteWord(sane.Word(rep.Status)); err != nil {
		return err
	}
	if err := w.WriteWord(sane.Word(rep.Info)); err != nil {
		return err
	}
	if err := rep.Value.Encode(w); err != nil {
		return err
	}
	return w.WriteCString(rep.Resource)
}

// DecodeControlOptionReply reads a CONTROL_OPTION reply.
func DecodeControlOptionReply(r *wire.Reader) (ControlOptionReply, error) {
	status, err := r.ReadWord()
	if err != nil {
		return ControlOptionReply{}, err
	}
	info, err := r.ReadWord()
	if err != nil {
		return ControlOptionReply{}, err
	}
	value, err := DecodeOptionValue(r)
	if err != nil {
		return ControlOptionReply{}, err
	}
	resource, err := r.ReadCString()
	if err != nil {
		return ControlOptionReply{}, err
	}
	return ControlOptionReply{
		Status:   sane.Status(status),
		Info:     Info(info),
		Value:    value,
		Resource: resource,
	}, nil
}

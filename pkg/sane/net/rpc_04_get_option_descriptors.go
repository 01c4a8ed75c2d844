package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// GetOptionDescriptorsRequest asks the server for the option
// descriptors of an opened device.
type GetOptionDescriptorsRequest struct {
	Handle Handle
}

// Encode writes req.
func (req GetOptionDescriptorsRequest) Encode(w *wire.Writer) error {
	if err := writeProcedure(w, sane.ProcedureGetOptionDescriptors); err != nil {
		return err
	}
	return req.Handle.Encode(w)
}

// DecodeGetOptionDescriptorsRequest reads a GET_OPTION_DESCRIPTORS
// request.
func DecodeGetOptionDescriptorsRequest(r *wire.Reader) (GetOptionDescriptorsRequest, error) {
	if err := expectProcedure(r, sane.ProcedureGetOptionDescriptors); err != nil {
		return GetOptionDescriptorsRequest{}, err
	}
	handle, err := DecodeHandle(r)
	if err != nil {
		return GetOptionDescriptorsRequest{}, err
	}
	return GetOptionDescriptorsRequest{Handle: handle}, nil
}

// GetOptionDescriptorsReply carries the device's option descriptors,
// indexed by position (option 0 is conventionally the option count,
// per the protocol's option-numbering convention).
type GetOptionDescriptorsReply struct {
	Options []OptionDescriptorView
}

// Encode writes rep using the nullable-pointer-terminated array
// framing.
func (rep GetOptionDescriptorsReply) Encode(w *wire.Writer) error {
	return encodeNullableArray(w, rep.Options, func(w *wire.Writer, d OptionDescriptorView) error {
		return d.Encode(w)
	})
}

// DecodeGetOptionDescriptorsReply reads a GET_OPTION_DESCRIPTORS reply.
func DecodeGetOptionDescriptorsReply(r *wire.Reader) (GetOptionDescriptorsReply, error) {
	options, err := decodeNullableArray(r, func(r *wire.Reader) (OptionDescriptorView, error) {
		buf, err := DecodeOptionDescriptor(r)
		if err != nil {
			return OptionDescriptorView{}, err
		}
		return buf.View(), nil
	})
	if err != nil {
		return GetOptionDescriptorsReply{}, err
	}
	return GetOptionDescriptorsReply{Options: options}, nil
}

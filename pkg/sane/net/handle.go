// Package net implements the domain value types and RPC message catalog
// of the SANE Network protocol: devices, option descriptors and values,
// and the ten request/reply message pairs. Devices and option
// descriptors have a borrowed View and an owned Buf presentation; the
// RPC messages, Range, Parameters and OptionValue are single plain value
// types with no separate View/Buf pair.
package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// Handle is an opaque, server-assigned identifier for a device opened
// on a connection. It is a distinct type (not a bare uint32) so callers
// cannot accidentally pass an arbitrary integer where a Handle is
// required.
type Handle uint32

// DecodeHandle reads a Handle.
func DecodeHandle(r *wire.Reader) (Handle, error) {
	w, err := r.ReadWord()
	if err != nil {
		return 0, err
	}
	return Handle(w), nil
}

// Encode writes h.
func (h Handle) Encode(w *wire.Writer) error {
	return w.WriteWord(sane.Word(h))
}

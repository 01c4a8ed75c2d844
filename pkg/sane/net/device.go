package net

import "github.com/jmillikin/go-sane-net/pkg/sane/wire"

// DeviceView is the borrowed presentation of a Device: a plain value
// whose string fields alias whatever DeviceBuf (or literal) produced
// them. Go's garbage collector keeps the backing storage alive for as
// long as a DeviceView references it, so no unsafe aliasing or arena is
// required to implement the borrowed/owned duality here.
type DeviceView struct {
	Name, Vendor, Model, Kind string
}

// DeviceBuf is the owned presentation of a Device. It dereferences to a
// DeviceView through embedding, matching the reference implementation's
// Buf-derefs-to-View shape.
type DeviceBuf struct {
	DeviceView
}

// NewDeviceBuf builds an owned Device from its four fields.
func NewDeviceBuf(name, vendor, model, kind string) DeviceBuf {
	return DeviceBuf{DeviceView{Name: name, Vendor: vendor, Model: model, Kind: kind}}
}

// View returns the borrowed view of b.
func (b DeviceBuf) View() DeviceView { return b.DeviceView }

// DecodeDevice reads a Device: four strings, name/vendor/model/kind.
// Empty strings decode from (and re-encode as) the wire NULL
// representation.
func DecodeDevice(r *wire.Reader) (DeviceBuf, error) {
	name, err := r.ReadCString()
	if err != nil {
		return DeviceBuf{}, err
	}
	vendor, err := r.ReadCString()
	if err != nil {
		return DeviceBuf{}, err
	}
	model, err := r.ReadCString()
	if err != nil {
		return DeviceBuf{}, err
	}
	kind, err := r.ReadCString()
	if err != nil {
		return DeviceBuf{}, err
	}
	return NewDeviceBuf(name, vendor, model, kind), nil
}

// Encode writes v.
func (v DeviceView) Encode(w *wire.Writer) error {
	if err := w.WriteCString(v.Name); err != nil {
		return err
	}
	if err := w.WriteCString(v.Vendor); err != nil {
		return err
	}
	if err := w.WriteCString(v.Model); err != nil {
		return err
	}
	return w.WriteCString(v.Kind)
}

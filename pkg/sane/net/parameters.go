package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// Parameters describes the geometry and encoding of the image data a
// scan will produce, as reported by GET_PARAMETERS.
type Parameters struct {
	Format         sane.Frame
	LastFrame      bool
	BytesPerLine   sane.Int
	PixelsPerLine  sane.Int
	Lines          sane.Int
	Depth          sane.Int
}

// DecodeParameters reads a Parameters in its declared field order.
func DecodeParameters(r *wire.Reader) (Parameters, error) {
	format, err := r.ReadWord()
	if err != nil {
		return Parameters{}, err
	}
	lastFrame, err := r.ReadBool()
	if err != nil {
		return Parameters{}, err
	}
	bytesPerLine, err := r.ReadInt()
	if err != nil {
		return Parameters{}, err
	}
	pixelsPerLine, err := r.ReadInt()
	if err != nil {
		return Parameters{}, err
	}
	lines, err := r.ReadInt()
	if err != nil {
		return Parameters{}, err
	}
	depth, err := r.ReadInt()
	if err != nil {
		return Parameters{}, err
	}
	return Parameters{
		Format:        sane.Frame(format),
		LastFrame:     lastFrame,
		BytesPerLine:  bytesPerLine,
		PixelsPerLine: pixelsPerLine,
		Lines:         lines,
		Depth:         depth,
	}, nil
}

// Encode writes p.
func (p Parameters) Encode(w *wire.Writer) error {
	if err := w.WriteWord(sane.Word(p.Format)); err != nil {
		return err
	}
	if err := w.WriteBool(p.LastFrame); err != nil {
		return err
	}
	if err := w.WriteInt(p.BytesPerLine); err != nil {
		return err
	}
	if err := w.WriteInt(p.PixelsPerLine); err != nil {
		return err
	}
	if err := w.WriteInt(p.Lines); err != nil {
		return err
	}
	return w.WriteInt(p.Depth)
}

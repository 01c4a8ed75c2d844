package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// StartRequest asks the server to begin a scan on an opened device.
type StartRequest struct {
	Handle Handle
}

// Encode writes req.
func (req StartRequest) Encode(w *wire.Writer) error {
	if err := writeProcedure(w, sane.ProcedureStart); err != nil {
		return err
	}
	return req.Handle.Encode(w)
}

// DecodeStartRequest reads a START request.
func DecodeStartRequest(r *wire.Reader) (StartRequest, error) {
	if err := expectProcedure(r, sane.ProcedureStart); err != nil {
		return StartRequest{}, err
	}
	handle, err := DecodeHandle(r)
	if err != nil {
		return StartRequest{}, err
	}
	return StartRequest{Handle: handle}, nil
}

// StartReply tells the client where to connect to receive image data:
// a TCP port on the same host, and the byte order the data will use.
// The data itself flows on a separate channel this module does not
// define.
type StartReply struct {
	Status    sane.Status
	Port      uint16
	ByteOrder sane.ByteOrder
	Resource  string
}

// Encode writes rep. Port is carried on the wire as a full Word.
func (rep StartReply) Encode(w *wire.Writer) error {
	if err := w.WriteWord(sane.Word(rep.Status)); err != nil {
		return err
	}
	if err := w.WriteWord(sane.Word(rep.Port)); err != nil {
		return err
	}
	if err := w.WriteWord(sane.Word(rep.ByteOrder)); err != nil {
		return err
	}
	return w.WriteCString(rep.Resource)
}

// DecodeStartReply reads a START reply, truncating the wire's Word-sized
// port field to its low 16 bits.
func DecodeStartReply(r *wire.Reader) (StartReply, error) {
	status, err := r.ReadWord()
	if err != nil {
		return StartReply{}, err
	}
	port, err := r.ReadWord()
	if err != nil {
		return StartReply{}, err
	}
	byteOrder, err := r.ReadWord()
	if err != nil {
		return StartReply{}, err
	}
	resource, err := r.ReadCString()
	if err != nil {
		return StartReply{}, err
	}
	return StartReply{
		Status:    sane.Status(status),
		Port:      uint16(port),
		ByteOrder: sane.ByteOrder(byteOrder),
		Resource:  resource,
	}, nil
}

package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// InitRequest is the body of the INIT RPC: the client's protocol
// version and a username used for logging/authorization on the server.
type InitRequest struct {
	VersionCode sane.Word
	Username    string
}

// Encode writes the ProcedureNumber followed by req's payload.
func (req InitRequest) Encode(w *wire.Writer) error {
	if err := writeProcedure(w, sane.ProcedureInit); err != nil {
		return err
	}
	if err := w.WriteWord(req.VersionCode); err != nil {
		return err
	}
	return w.WriteCString(req.Username)
}

// DecodeInitRequest reads an INIT request, including and validating its
// leading ProcedureNumber.
func DecodeInitRequest(r *wire.Reader) (InitRequest, error) {
	if err := expectProcedure(r, sane.ProcedureInit); err != nil {
		return InitRequest{}, err
	}
	versionCode, err := r.ReadWord()
	if err != nil {
		return InitRequest{}, err
	}
	username, err := r.ReadCString()
	if err != nil {
		return InitRequest{}, err
	}
	return InitRequest{VersionCode: versionCode, Username: username}, nil
}

// InitReply is the server's response to INIT: whether the server
// accepts the connection, and the protocol version it will speak.
type InitReply struct {
	Status      sane.Status
	VersionCode sane.Word
}

// Encode writes rep. Replies never carry a leading ProcedureNumber.
func (rep InitReply) Encode(w *wire.Writer) error {
	if err := w.WriteWord(sane.Word(rep.Status)); err != nil {
		return err
	}
	return w.WriteWord(rep.VersionCode)
}

// DecodeInitReply reads an INIT reply.
func DecodeInitReply(r *wire.Reader) (InitReply, error) {
	status, err := r.ReadWord()
	if err != nil {
		return InitReply{}, err
	}
	versionCode, err := r.ReadWord()
	if err != nil {
		return InitReply{}, err
	}
	return InitReply{Status: sane.Status(status), VersionCode: versionCode}, nil
}

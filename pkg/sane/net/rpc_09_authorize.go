package net

import (
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// AuthorizeRequest answers a server's out-of-band authorization
// challenge (signaled by a non-empty Resource in an OPEN,
// CONTROL_OPTION, or START reply) with credentials for that resource.
type AuthorizeRequest struct {
	Resource string
	Username string
	Password string
}

// Encode writes req.
func (req AuthorizeRequest) Encode(w *wire.Writer) error {
	if err := writeProcedure(w, sane.ProcedureAuthorize); err != nil {
		return err
	}
	if err := w.WriteCString(req.Resource); err != nil {
		return err
	}
	if err := w.WriteCString(req.Username); err != nil {
		return err
	}
	return w.WriteCString(req.Password)
}

// DecodeAuthorizeRequest reads an AUTHORIZE request.
func DecodeAuthorizeRequest(r *wire.Reader) (AuthorizeRequest, error) {
	if err := expectProcedure(r, sane.ProcedureAuthorize); err != nil {
		return AuthorizeRequest{}, err
	}
	resource, err := r.ReadCString()
	if err != nil {
		return AuthorizeRequest{}, err
	}
	username, err := r.ReadCString()
	if err != nil {
		return AuthorizeRequest{}, err
	}
	password, err := r.ReadCString()
	if err != nil {
		return AuthorizeRequest{}, err
	}
	return AuthorizeRequest{Resource: resource, Username: username, Password: password}, nil
}

// AuthorizeReply is the (content-free) reply to AUTHORIZE: a single
// dummy Word, always 0.
type AuthorizeReply struct{}

// Encode writes the dummy Word.
func (AuthorizeReply) Encode(w *wire.Writer) error {
	return writeDummy(w)
}

// DecodeAuthorizeReply reads and discards the dummy Word.
func DecodeAuthorizeReply(r *wire.Reader) (AuthorizeReply, error) {
	if err := readDummy(r); err != nil {
		return AuthorizeReply{}, err
	}
	return AuthorizeReply{}, nil
}

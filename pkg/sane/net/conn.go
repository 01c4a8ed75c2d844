package net

import (
	"context"
	stdnet "net"

	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// request is implemented by every generated *Request type in this
// package.
type request interface {
	Encode(w *wire.Writer) error
}

// SendRequest encodes req and writes it to conn, applying ctx's
// deadline (if any) to the write. The codec itself performs no
// cancellation-aware polling; this is the one place a context
// surfaces, translated into the net.Conn deadline the connection
// driver already understands.
func SendRequest(ctx context.Context, conn stdnet.Conn, req request) error {
	if dl, ok := ctx.Deadline(); ok {
		if err := conn.SetWriteDeadline(dl); err != nil {
			return err
		}
	}
	return req.Encode(wire.NewWriter(conn))
}

// ReceiveReply decodes one reply from conn using decode, applying
// ctx's deadline (if any) to the read.
func ReceiveReply[T any](ctx context.Context, conn stdnet.Conn, decode func(*wire.Reader) (T, error)) (T, error) {
	if dl, ok := ctx.Deadline(); ok {
		if err := conn.SetReadDeadline(dl); err != nil {
			var zero T
			return zero, err
		}
	}
	return decode(wire.NewReader(conn))
}

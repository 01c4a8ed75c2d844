// Package metrics instruments the SANE wire codec with Prometheus
// counters and histograms. It wraps the io.Reader/io.Writer underneath
// pkg/sane/wire's Reader/Writer in byte-counting shims and records
// per-message outcomes reported by the caller: the core codec packages
// never import Prometheus themselves, so a caller who does not need
// metrics pays nothing for this package's existence.
package metrics

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jmillikin/go-sane-net/internal/logger"
	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

var (
	messagesDecoded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sane_messages_decoded_total",
		Help: "SANE protocol messages successfully decoded, by procedure.",
	}, []string{"procedure"})

	messagesEncoded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sane_messages_encoded_total",
		Help: "SANE protocol messages successfully encoded, by procedure.",
	}, []string{"procedure"})

	decodeErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sane_decode_errors_total",
		Help: "SANE protocol decode failures, by error kind.",
	}, []string{"kind"})

	messageBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sane_message_bytes",
		Help:    "Size in bytes of a single decoded or encoded SANE message payload.",
		Buckets: prometheus.ExponentialBuckets(16, 2, 12),
	})
)

// Register adds this package's collectors to reg. Callers typically
// pass prometheus.DefaultRegisterer.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(messagesDecoded, messagesEncoded, decodeErrors, messageBytes)
}

// ObserveDecode records a successful or failed decode of the named
// procedure, along with the number of bytes consumed. It also emits a
// debug-level log line per decoded message, tagged with the same
// procedure name.
func ObserveDecode(procedure string, bytesRead int, err error) {
	if err != nil {
		decodeErrors.WithLabelValues(errorKind(err)).Inc()
		logger.Debug("sane decode failed", logger.Procedure(procedure), logger.Err(err))
		return
	}
	messagesDecoded.WithLabelValues(procedure).Inc()
	messageBytes.Observe(float64(bytesRead))
	logger.Debug("sane message decoded", logger.Procedure(procedure), logger.BytesRead(bytesRead))
}

// ObserveEncode records a successful encode of the named procedure.
func ObserveEncode(procedure string, bytesWritten int) {
	messagesEncoded.WithLabelValues(procedure).Inc()
	messageBytes.Observe(float64(bytesWritten))
	logger.Debug("sane message encoded", logger.Procedure(procedure), logger.BytesWritten(bytesWritten))
}

func errorKind(err error) string {
	var decErr *sane.DecodeError
	if errors.As(err, &decErr) {
		return decErr.Kind.String()
	}
	return "unknown"
}

// CountingReader wraps an io.Reader and tracks the number of bytes
// consumed through it, so a caller can report ObserveDecode's
// bytesRead without threading a counter through every primitive
// decode call.
type CountingReader struct {
	r     io.Reader
	count int
}

// NewCountingReader wraps r.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{r: r}
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.count += n
	return n, err
}

// BytesRead returns the running total of bytes read through c.
func (c *CountingReader) BytesRead() int { return c.count }

// WireReader returns a *wire.Reader decoding through c, so the byte
// count stays attached to the same stream the caller decodes from.
func (c *CountingReader) WireReader() *wire.Reader {
	return wire.NewReader(c)
}

// CountingWriter is the encode-side counterpart of CountingReader.
type CountingWriter struct {
	w     io.Writer
	count int
}

// NewCountingWriter wraps w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (c *CountingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.count += n
	return n, err
}

// BytesWritten returns the running total of bytes written through c.
func (c *CountingWriter) BytesWritten() int { return c.count }

// WireWriter returns a *wire.Writer encoding through c.
func (c *CountingWriter) WireWriter() *wire.Writer {
	return wire.NewWriter(c)
}

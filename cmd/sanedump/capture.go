package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jmillikin/go-sane-net/pkg/sane"
	"github.com/jmillikin/go-sane-net/pkg/sane/wire"
)

// captureDirection tags whether a captured record is a client request
// or a server reply. This distinction exists only in the capture file
// framing below; it has no counterpart on the SANE wire itself.
type captureDirection uint32

const (
	captureRequest captureDirection = 0
	captureReply   captureDirection = 1
)

// captureRecord is one message pulled from a capture file: a
// direction tag and procedure number recorded out of band (replies
// carry no procedure number on the wire), followed by the raw message
// bytes as they appeared on the connection.
//
// This framing is a tool convenience for sanedump, not part of the
// SANE network protocol: [direction Word][procedure Word][length
// Word][length bytes].
type captureRecord struct {
	Direction captureDirection
	Procedure sane.ProcedureNumber
	Payload   []byte
}

func readCaptureRecords(r io.Reader) ([]captureRecord, error) {
	cr := wire.NewReader(r)
	var records []captureRecord
	for {
		dirWord, err := cr.ReadWord()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, err
		}
		procWord, err := cr.ReadWord()
		if err != nil {
			return nil, fmt.Errorf("reading procedure number: %w", err)
		}
		n, err := cr.ReadSize()
		if err != nil {
			return nil, fmt.Errorf("reading record length: %w", err)
		}
		payload, err := cr.ReadBytes(n)
		if err != nil {
			return nil, fmt.Errorf("reading record payload: %w", err)
		}
		records = append(records, captureRecord{
			Direction: captureDirection(dirWord),
			Procedure: sane.ProcedureNumber(procWord),
			Payload:   payload,
		})
	}
}

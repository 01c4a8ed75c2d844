package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/jmillikin/go-sane-net/internal/logger"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <capture-file>",
	Short: "Decode a sanedump capture file and print its messages",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	v := newViper()
	cfg, err := loadDumpConfig(v)
	if err != nil {
		return err
	}
	initLogging(cfg)
	registerMetrics()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := setupTracing(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(ctx) }()

	corrID := correlationID()
	logger.InfoCtx(ctx, "sanedump decode starting", "correlation_id", corrID, "capture_file", args[0])

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening capture file: %w", err)
	}
	defer f.Close()

	records, err := readCaptureRecords(f)
	if err != nil {
		return fmt.Errorf("reading capture file: %w", err)
	}

	tracer := otel.Tracer("sanedump")
	messages := make([]decodedMessage, 0, len(records))
	for i, rec := range records {
		_, span := tracer.Start(ctx, "sanedump.decode_message")
		msg, err := decodeRecord(rec)
		span.End()
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		messages = append(messages, msg)
	}

	printMessageTable(cmd.OutOrStdout(), messages)
	logger.InfoCtx(ctx, "sanedump decode finished", "correlation_id", corrID, "message_count", len(messages))
	return nil
}

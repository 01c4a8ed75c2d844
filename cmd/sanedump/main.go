// Command sanedump decodes captured SANE Network protocol v3 messages
// and prints them in a readable table. It is a diagnostic tool built
// on top of pkg/sane/net; it is not part of the wire protocol and does
// not speak to a scanner or a saned server itself.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jmillikin/go-sane-net/internal/logger"
	"github.com/jmillikin/go-sane-net/pkg/sane/metrics"
)

var (
	cfgFile   string
	traceFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "sanedump",
	Short:         "Decode and inspect SANE Network protocol v3 captures",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: none, SANEDUMP_* env vars and flags only)")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "emit an OpenTelemetry span per decoded message, printed to stdout")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("sanedump")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	return v
}

// setupTracing wires an OpenTelemetry TracerProvider with a stdout
// exporter when --trace is set, returning a shutdown func. When
// tracing is off it installs nothing and returns a no-op shutdown func,
// so callers don't need to branch; spans then go to otel's default
// global provider, which records nothing.
func setupTracing(ctx context.Context) (func(context.Context) error, error) {
	if !traceFlag {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("creating stdout trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// correlationID returns a fresh identifier used to tag one sanedump
// invocation's log lines together. Spans do not carry it.
func correlationID() string {
	return uuid.New().String()
}

func registerMetrics() {
	metrics.Register(prometheus.DefaultRegisterer)
}

func initLogging(cfg dumpConfig) {
	_ = logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
}

package logger

import (
	"io"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.Nop()

// Options describes how the process-wide logger is built.
type Options struct {
	Service string
	Level   string
	// LogstashAddr, when set, mirrors every entry to a Logstash TCP input.
	LogstashAddr string
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

func build(w io.Writer, service, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// Init configures the global logger to write JSON lines to stdout.
func Init(serviceName string, level string) {
	log = build(os.Stdout, serviceName, level)
}

// InitWithWriter is Init with a caller supplied sink. Tests use it to capture output.
func InitWithWriter(serviceName string, level string, w io.Writer) {
	log = build(w, serviceName, level)
}

// Setup applies opts. A Logstash dial failure falls back to stdout only and is
// returned so the caller can report it once the logger is usable.
func Setup(opts Options) error {
	if opts.LogstashAddr == "" {
		Init(opts.Service, opts.Level)
		return nil
	}
	conn, err := net.DialTimeout("tcp", opts.LogstashAddr, 5*time.Second)
	if err != nil {
		Init(opts.Service, opts.Level)
		return err
	}
	log = build(zerolog.MultiLevelWriter(os.Stdout, conn), opts.Service, opts.Level)
	return nil
}

func Info() *zerolog.Event {
	return log.Info()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}

// Component returns a child logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

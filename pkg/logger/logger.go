package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config Optionen für den Logger.
type Config struct {
	Env   string // development -> lesbare Konsole; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger Wrapper um zerolog für Injektion und Konsistenz.
type Logger struct {
	zl zerolog.Logger
}

// New erzeugt einen strukturierten Logger. In development lesbare Ausgabe, sonst JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Globalen zerolog-Logger umleiten für Bibliotheken, die ihn nutzen
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Trace, Debug, Info, Warn, Error delegieren an zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With erzeugt einen Sublogger mit festen Feldern.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog liefert den internen Logger, falls die direkte API benötigt wird.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging verbosity
type Level logging.Level

// Levels accepted by SetLevel, from most to least verbose
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is a named leveled logger
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for module name
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Printer adapts a Logger to the Printf method the renderer accepts.
// Messages are logged at Info level.
type Printer struct {
	logger Logger
}

// NewPrinter wraps logger
func NewPrinter(logger Logger) *Printer {
	return &Printer{logger: logger}
}

// Printf logs at Info level
func (p *Printer) Printf(format string, args ...interface{}) {
	p.logger.Infof(format, args...)
}

// SetSink redirects all loggers to sink, keeping the current level
func SetSink(sink io.Writer) {
	level := logging.NOTICE
	if leveledBackend != nil {
		level = leveledBackend.GetLevel("")
	}

	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(level, "")
	logging.SetBackend(leveledBackend)
}

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// SetLevel sets the verbosity of all loggers
func SetLevel(level Level) {
	if backendLevel, ok := backendLevels[level]; ok {
		leveledBackend.SetLevel(backendLevel, "")
	}
}

// GetLevel returns the current verbosity
func GetLevel() Level {
	current := leveledBackend.GetLevel("")
	for level, backendLevel := range backendLevels {
		if backendLevel == current {
			return level
		}
	}
	return Error
}

// stdout may carry the PPM stream, so logs default to stderr
func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}

package loggers

import (
	"os"

	"github.com/sirupsen/logrus"
)

const (
	RPC = "rpc"
	SCM = "scm"
)

var w *loggerWrapper

type loggerWrapper struct {
	loggers map[string]*logrus.Entry
}

// Initialize wires the module loggers. Debug raises every module to debug
// level, matching the --debug global flag.
func Initialize(debug bool) {
	level := logrus.InfoLevel
	if debug {
		level = logrus.DebugLevel
	}

	m := make(map[string]*logrus.Entry)
	for _, module := range []string{RPC, SCM} {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(level)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05.000",
		})
		m[module] = logger.WithField("module", module)
	}

	w = &loggerWrapper{loggers: m}
}

// SetDebug raises the module loggers to debug level once the debug state is
// fully resolved; the global flag wins over the config file, so it only ever
// raises, never lowers.
func SetDebug(debug bool) {
	if w == nil {
		Initialize(debug)
		return
	}
	if !debug {
		return
	}
	for _, entry := range w.loggers {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}
}

func Logger(name string) *logrus.Entry {
	if w == nil {
		Initialize(false)
	}
	return w.loggers[name]
}

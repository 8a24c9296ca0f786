package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults so packages and tests can log without setup.
var Log = logrus.New()

// Init configures Log from the environment. Call once from main.
//
//	LOG_LEVEL  logrus level name, default "info"
//	LOG_FORMAT "json" or "text", default "text"
func Init() {
	InitWithOutput(os.Stdout)
}

func InitWithOutput(out io.Writer) {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}

// SetDebug forces debug level regardless of LOG_LEVEL. Disabling drops back
// to info.
func SetDebug(enabled bool) {
	if enabled {
		Log.SetLevel(logrus.DebugLevel)
		return
	}
	Log.SetLevel(logrus.InfoLevel)
}

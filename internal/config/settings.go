package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogLevel resolves SWEEP6D_LOG_LEVEL, falling back to debug in development
// and info otherwise.
func LogLevel() logrus.Level {
	if raw, ok := os.LookupEnv("SWEEP6D_LOG_LEVEL"); ok {
		if level, err := logrus.ParseLevel(raw); err == nil {
			return level
		}
		Log.WithField("SWEEP6D_LOG_LEVEL", raw).Warn("unparsable log level, ignoring")
	}
	if Development() {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

func LogFile() (string, bool) {
	return os.LookupEnv("SWEEP6D_LOG_FILE")
}

package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	return SetupLoggingForEnvironment("")
}

// SetupLoggingForEnvironment enables debug output for local development.
func SetupLoggingForEnvironment(environment string) *logrus.Logger {
	level := logrus.InfoLevel
	if environment == "development" {
		level = logrus.DebugLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: level,
		Hooks: make(logrus.LevelHooks),
	}

	return &logger
}

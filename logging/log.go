package logging

import (
	"log"
	"os"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates a hclog logger with the level specified by the MB_LOG_LEVEL env var
func NewLogger(options *hclog.LoggerOptions) hclog.Logger {
	if options == nil {
		options = &hclog.LoggerOptions{}
	}
	if options.Level == hclog.NoLevel {
		options.Level = hclog.LevelFromString(LogLevel())
	}
	if options.Output == nil {
		options.Output = os.Stderr
	}
	return hclog.New(options)
}

// Initialize routes the standard log package through a new hclog logger,
// inferring levels from the "[WARN] ..." prefix convention used at call
// sites throughout the library. Returns the logger for direct use.
func Initialize(name string) hclog.Logger {
	// time will be provided by the logger
	logger := NewLogger(&hclog.LoggerOptions{Name: name, DisableTime: true})
	log.SetOutput(logger.StandardWriter(&hclog.StandardLoggerOptions{InferLevels: true}))
	log.SetPrefix("")
	log.SetFlags(0)
	return logger
}

func LogLevel() string {
	level, ok := os.LookupEnv(EnvLogLevel)
	if !ok {
		level = defaultLogLevel
	}
	return level
}

package logging

import (
	"github.com/phuslu/log"
)

func CreateLogger(level log.Level) *log.Logger {
	return &log.Logger{
		Level:  level,
		Caller: 0,
		Writer: &log.ConsoleWriter{
			ColorOutput:    false,
			EndWithMessage: true,
		},
	}
}

func CreateDebugLogger() *log.Logger {
	return CreateLogger(log.DebugLevel)
}

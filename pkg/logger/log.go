package logger

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Output goes to stdout and,
// unless LOG_FILE is empty, to a log file as well.
func NewLogger() *zap.Logger {
	outputs := []string{"stdout"}
	if path := os.Getenv("LOG_FILE"); path != "" {
		outputs = append(outputs, path)
	}

	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return l
}

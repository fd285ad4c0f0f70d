package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const consoleEncodingName = "console"

// NewApplicationLogger builds the console logger the entry point uses for
// fatal reporting. A one-shot scan emits only the level and the message,
// without timestamps, caller sites, or stack traces.
func NewApplicationLogger() (*zap.Logger, error) {
	loggerConfiguration := zap.NewProductionConfig()
	loggerConfiguration.Encoding = consoleEncodingName
	loggerConfiguration.DisableCaller = true
	loggerConfiguration.DisableStacktrace = true
	loggerConfiguration.EncoderConfig = zapcore.EncoderConfig{
		MessageKey:  "message",
		EncodeLevel: zapcore.CapitalLevelEncoder,
	}
	return loggerConfiguration.Build()
}

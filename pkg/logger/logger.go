package logger

import "go.uber.org/zap"

// New builds the process logger. Debug selects the development config with
// human-readable output; otherwise JSON production logging is used.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

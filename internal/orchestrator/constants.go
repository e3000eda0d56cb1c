package orchestrator

import (
	"os"
	"strings"
	"time"
)

// DefaultProposeTimeout bounds the whole six-call sequence. The remote calls
// themselves carry no retry, so this is the only local time limit.
var DefaultProposeTimeout = getTimeoutOrDefault("PRFORGE_TIMEOUT", 10*time.Minute, 5*time.Second)

// isTestEnvironment detects if we're running in a test environment
func isTestEnvironment() bool {
	for _, arg := range os.Args {
		if strings.Contains(arg, ".test") || strings.Contains(arg, "go test") {
			return true
		}
	}
	return os.Getenv("GO_TEST") == "true" || os.Getenv("TEST_MODE") == "true"
}

// getTimeoutOrDefault returns production timeout or test timeout based on environment
func getTimeoutOrDefault(envVar string, prodDefault, testDefault time.Duration) time.Duration {
	if env := os.Getenv(envVar); env != "" {
		if duration, err := time.ParseDuration(env); err == nil {
			return duration
		}
	}
	if isTestEnvironment() {
		return testDefault
	}
	return prodDefault
}

package utils

import "time"

// ToDurationMs converts milliseconds to time.Duration.
func ToDurationMs(millis int) time.Duration {
	return time.Duration(millis) * time.Millisecond
}

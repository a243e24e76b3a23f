//go:build debug

package trigon

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[trigon DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages when the repo is built with -tags debug.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

//go:build !debug

package trigon

// logDebugf is a no-op in release builds. A release build calling init's debug-enabled
// announcement must still link, which the debug-only logger variant did not provide for.
func logDebugf(format string, v ...interface{}) {}

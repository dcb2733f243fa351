package aco

import "github.com/rs/zerolog"

// testLogger returns a no-op logger for tests that don't assert on log
// output.
func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

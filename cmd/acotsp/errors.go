package main

import "errors"

// errRunFailed is returned by the root command when at least one run
// description's run failed, so the process exits non-zero while still
// letting every other run description complete.
var errRunFailed = errors.New("acotsp: one or more runs failed")

package aco

import "errors"

// ErrNumericalAnomaly marks a NaN/Inf found where the combined-info matrix
// must be finite and positive — a programmer-error condition that a valid
// instance can never trigger through user input.
var ErrNumericalAnomaly = errors.New("aco: numerical anomaly in combined-info matrix")

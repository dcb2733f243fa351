// Package aco implements the Ant Colony Optimization engine: ants, the
// colony contract shared by the Min-Max Ant System and Ant Colony System
// variants, their sequential and parallel implementations, the result log,
// and the iterate-construct-record-update runner.
package aco

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/acotsp/aco"
	"github.com/katalvlaran/acotsp/config"
)

// resultFileName builds the result log's filename: out_path with slashes
// replaced by underscores, followed by "_<Algorithm>_<run_index>.txt".
func resultFileName(outPath string, algorithm config.Algorithm, runIndex int) string {
	sanitized := strings.ReplaceAll(outPath, "/", "_")

	return fmt.Sprintf("%s_%s_%d.txt", sanitized, algorithm.String(), runIndex)
}

// formatTour renders a tour as "[v1, v2, ...]" using 1-based city indices.
func formatTour(cities []int) string {
	parts := make([]string, len(cities))
	for i, c := range cities {
		parts[i] = strconv.Itoa(c + 1)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// writeResultLog renders log to w in a fixed line-oriented format: a
// three-line best-found header, a separator, then one row per iteration.
// includeTour controls whether each row also carries its tour text (the
// CLI's --tour flag).
func writeResultLog(w io.Writer, log *aco.ResultLog, includeTour bool) error {
	bw := bufio.NewWriter(w)

	best := log.BestTimestamped()
	fmt.Fprintf(bw, "BEST FOUND: %d\n", best.Ant.Length)
	fmt.Fprintf(bw, "BEST TOUR: %s\n", formatTour(best.Ant.Tour.Cities()))
	fmt.Fprintf(bw, "BEST AT ITERATION %d, ELAPSED %s\n", best.Iteration, best.Elapsed)
	fmt.Fprintln(bw, strings.Repeat("-", 60))

	for _, entry := range log.Entries() {
		fmt.Fprintf(bw, "%d\t%t\t%d\t%s", entry.Iteration, entry.IsNewBest, entry.Ant.Length, entry.Elapsed)
		if includeTour {
			fmt.Fprintf(bw, "\t%s", formatTour(entry.Ant.Tour.Cities()))
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

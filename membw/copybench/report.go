package copybench

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

const mib = 1024 * 1024

const (
	matchLine    = "\x1b[1;92mFinal vectors match: TRUE\x1b[0m"
	mismatchLine = "\x1b[1;91mFinal vectors match: FALSE\x1b[0m"
)

// Bandwidth returns the total MiB moved by iterations copies of an arrayBytes
// buffer and the resulting rate over elapsed. A zero elapsed yields +Inf.
func Bandwidth(arrayBytes int64, iterations int, elapsed time.Duration) (totalMiB, mibPerSec float64) {
	totalMiB = float64(arrayBytes*int64(iterations)) / mib
	return totalMiB, totalMiB / elapsed.Seconds()
}

// decimal formats v in plain positional notation, never with an exponent.
func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printHeader(w io.Writer, arrayBytes int64, iterations int) {
	fmt.Fprintf(w, "Copying: %s MiB, %d Iterations\n", decimal(float64(arrayBytes)/mib), iterations)
}

func printThread(w io.Writer, i, elements int) {
	fmt.Fprintf(w, "Thread %d: %d; ", i+1, elements)
}

func printSummary(w io.Writer, r *Result) {
	fmt.Fprintf(w, "Done: %s MiB, %s sec\n", decimal(r.TotalMiB), decimal(r.Elapsed.Seconds()))
	fmt.Fprintf(w, "Bandwidth: %s MiB/sec\n", decimal(r.Bandwidth))
}

func printVerdict(stdout, stderr io.Writer, match bool) {
	if match {
		fmt.Fprintln(stdout, matchLine)
		return
	}
	fmt.Fprintln(stderr, mismatchLine)
}

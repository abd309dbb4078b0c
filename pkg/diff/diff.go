// Package diff renders line-oriented unified diffs of generated artifacts.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Unified compares before and after line by line and returns a unified diff
// with a single hunk covering both texts. It returns "" when they are equal.
// Output is deterministic: headers carry only the labels.
func Unified(before, after, beforeLabel, afterLabel string) string {
	out, _ := unified(before, after, beforeLabel, afterLabel)
	return out
}

// UnifiedWithStats is Unified plus the added and removed line counts.
func UnifiedWithStats(before, after, beforeLabel, afterLabel string) (string, Stats) {
	return unified(before, after, beforeLabel, afterLabel)
}

func unified(before, after, beforeLabel, afterLabel string) (string, Stats) {
	var stats Stats
	if before == after {
		return "", stats
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(terminate(before), terminate(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
		}
	}

	result := buf.String()
	all := strings.Split(result, "\n")
	if len(all) > maxDiffLines {
		return strings.Join(all[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n", stats
	}
	return result, stats
}

// terminate ensures the final line ends in a newline so the last line of
// each side diffs as a whole line.
func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(terminate(s), "\n")
}

package main

import (
	"fmt"
	"log"

	"github.com/fatih/color"
	"golang.org/x/text/unicode/norm"
)

// DigestReport collects per-source results in input order and formats them
// as "<label>: <digest>" lines, one per source. A source that failed keeps
// its place in the report so later sources are still listed after it.
type DigestReport struct {
	results []digestResult
}

type digestResult struct {
	label  string
	digest string
	err    error
}

// AddDigest records a successful digest for the given label.
func (r *DigestReport) AddDigest(label, digest string) {
	r.results = append(r.results, digestResult{label: normalizeLabel(label), digest: digest})
}

// AddError records a failed source for the given label.
func (r *DigestReport) AddError(label string, err error) {
	r.results = append(r.results, digestResult{label: normalizeLabel(label), err: err})
}

// Failures returns the number of sources that could not be digested.
func (r *DigestReport) Failures() int {
	count := 0
	for _, result := range r.results {
		if result.err != nil {
			count++
		}
	}
	return count
}

// Lines returns the formatted report lines in input order.
func (r *DigestReport) Lines() []string {
	lines := make([]string, 0, len(r.results))
	for _, result := range r.results {
		if result.err != nil {
			lines = append(lines, fmt.Sprintf("%s: %s", result.label, color.RedString("error: %v", result.err)))
		} else {
			lines = append(lines, fmt.Sprintf("%s: %s", result.label, result.digest))
		}
	}
	return lines
}

// Print writes the report through the given logger.
func (r *DigestReport) Print(logger *log.Logger) {
	for _, line := range r.Lines() {
		logger.Print(line)
	}
}

// Normalize Unicode combining characters so labels render consistently
func normalizeLabel(label string) string {
	return norm.NFC.String(label)
}

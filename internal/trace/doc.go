// Package trace recognizes render, layout, and state lines in debug log
// output from a Connect IQ rendering loop.
//
// Each line category has its own grammar and is scanned over the whole
// text independently; categories are deliberately not exclusive, and a
// line that satisfies more than one grammar fires each of them. Lines
// that match nothing are ignored, so any text input yields a valid
// (possibly empty) scan result.
package trace

// Package capture composes the trace scanner, model builder, and
// serializers into the single entry point the CLI and batch tooling
// consume: one log text in, one serialized UI-state document out.
package capture

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"garmindev/internal/render"
	"garmindev/internal/trace"
	"garmindev/internal/uistate"
)

// Format selects the serialized output form.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format token.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatXML, "":
		return FormatXML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected xml or json)", value)
	}
}

// Options adjusts one capture run.
type Options struct {
	Device  string
	AppName string
	Format  Format
	// Now pins the capture timestamp; zero means current time.
	Now time.Time
}

// Counts breaks down captured elements by type.
type Counts struct {
	Text   int
	Circle int
	Rect   int
}

// Total returns the combined element count.
func (c Counts) Total() int {
	return c.Text + c.Circle + c.Rect
}

// Result is the outcome of one capture run.
type Result struct {
	RunID    string
	Document *uistate.Document
	Output   []byte
	Format   Format
	Counts   Counts
}

// Run parses one log text into a UI-state document and serializes it.
// Malformed trace text is never an error; the only failure mode is an
// unknown format.
func Run(logText string, opts Options) (*Result, error) {
	format := opts.Format
	if format == "" {
		format = FormatXML
	}

	scan := trace.Scan(logText)
	doc := uistate.Build(scan, uistate.Options{
		Device:  opts.Device,
		AppName: opts.AppName,
		Now:     opts.Now,
	})

	var output []byte
	switch format {
	case FormatXML:
		output = render.XML(doc)
	case FormatJSON:
		encoded, err := render.JSON(doc)
		if err != nil {
			return nil, err
		}
		output = encoded
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	return &Result{
		RunID:    uuid.NewString(),
		Document: doc,
		Output:   output,
		Format:   format,
		Counts: Counts{
			Text:   len(scan.Texts),
			Circle: len(scan.Circles),
			Rect:   len(scan.Rects),
		},
	}, nil
}

package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"garmindev/internal/logging"
)

func TestConsoleHandlerFormatsComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logging.NewComponentLogger(logger, "capture").Info("document built",
		logging.Int("elements", 3),
		logging.String("device", "fenix7"),
	)

	line := buf.String()
	if !strings.Contains(line, "INFO capture: document built") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "elements=3") || !strings.Contains(line, "device=fenix7") {
		t.Fatalf("missing attrs: %q", line)
	}
}

func TestConsoleHandlerQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("msg", logging.String("app", "Garmin App"))
	if !strings.Contains(buf.String(), `app="Garmin App"`) {
		t.Fatalf("expected quoted value: %q", buf.String())
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should be suppressed: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestJSONHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", logging.String("k", "v"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record["msg"] != "hello" || record["level"] != "info" || record["k"] != "v" {
		t.Fatalf("unexpected record: %#v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("missing ts key: %#v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

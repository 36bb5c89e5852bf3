package trace_test

import (
	"strings"
	"testing"

	"garmindev/internal/trace"
)

func TestScanEmptyOrGarbageYieldsNothing(t *testing.T) {
	for _, input := range []string{
		"",
		"completely unstructured\nnoise without brackets",
		"[0.1] RENDER: Screen(notxnumbers) Center(a,b)",
	} {
		res := trace.Scan(input)
		if res.Screen != nil {
			t.Fatalf("unexpected screen match for %q", input)
		}
		if res.ElementCount() != 0 {
			t.Fatalf("expected zero elements for %q, got %d", input, res.ElementCount())
		}
	}
}

func TestScanScreenFirstMatchWins(t *testing.T) {
	input := "[0.1] RENDER: Screen(300x300) Center(150,150)\n" +
		"[0.2] RENDER: Screen(260x260) Center(130,130)"
	res := trace.Scan(input)
	if res.Screen == nil {
		t.Fatal("expected screen match")
	}
	if res.Screen.Width != 300 || res.Screen.Height != 300 {
		t.Fatalf("unexpected geometry: %+v", res.Screen)
	}
	if res.Screen.CenterX != 150 || res.Screen.CenterY != 150 {
		t.Fatalf("unexpected center: %+v", res.Screen)
	}
}

func TestScanTextLine(t *testing.T) {
	res := trace.Scan(`[0.2] RENDER: Label(Hi there) Position(10,20) Font(LARGE) Color(0xFF0000)`)
	if len(res.Texts) != 1 {
		t.Fatalf("expected one text match, got %d", len(res.Texts))
	}
	got := res.Texts[0]
	if got.Name != "Label" || got.Content != "Hi there" {
		t.Fatalf("unexpected name/content: %+v", got)
	}
	if got.X != 10 || got.Y != 20 {
		t.Fatalf("unexpected position: %+v", got)
	}
	if got.Font != "LARGE" || got.Color != "0xFF0000" {
		t.Fatalf("unexpected font/color: %+v", got)
	}
}

func TestScanCircleAndRectLines(t *testing.T) {
	input := strings.Join([]string{
		"[1.0] RENDER: Dot(marker) Position(30,40) Size(7.5) Color(0x00FF00)",
		"[1.1] RENDER: Panel(background) Position(0,0) Size(260x80) Color(0x111111)",
		"[1.2] RENDER: Divider Position(0,90) Size(260x2) Color(0xFFFFFF)",
	}, "\n")
	res := trace.Scan(input)

	if len(res.Circles) != 1 {
		t.Fatalf("expected one circle, got %d", len(res.Circles))
	}
	if res.Circles[0].Size != 7.5 {
		t.Fatalf("unexpected circle size: %v", res.Circles[0].Size)
	}

	if len(res.Rects) != 2 {
		t.Fatalf("expected two rects, got %d", len(res.Rects))
	}
	if res.Rects[0].Content != "background" {
		t.Fatalf("expected rect label, got %q", res.Rects[0].Content)
	}
	if res.Rects[1].Content != "" {
		t.Fatalf("expected empty label for bare rect, got %q", res.Rects[1].Content)
	}
	if res.Rects[1].Width != 260 || res.Rects[1].Height != 2 {
		t.Fatalf("unexpected rect dimensions: %+v", res.Rects[1])
	}
}

func TestScanLayoutAndStateAreRecognizedSeparately(t *testing.T) {
	input := "[2.0] LAYOUT: MainView(vertical)\n[2.1] STATE: Battery(87%)"
	res := trace.Scan(input)
	if len(res.Layouts) != 1 || res.Layouts[0].Name != "MainView" {
		t.Fatalf("unexpected layouts: %+v", res.Layouts)
	}
	if len(res.States) != 1 || res.States[0].Content != "87%" {
		t.Fatalf("unexpected states: %+v", res.States)
	}
	if res.ElementCount() != 0 {
		t.Fatalf("layout/state lines must not produce elements, got %d", res.ElementCount())
	}
}

func TestScanCategoriesScanIndependently(t *testing.T) {
	// Interleaved categories; each grammar sees the whole text.
	input := "[3.0] RENDER: Dot(b) Position(3,4) Size(5.0) Color(0xAA)\n" +
		"[3.1] RENDER: Label(a) Position(1,2) Font(SMALL) Color(0xFF)\n" +
		"[3.2] RENDER: Dot(c) Position(5,6) Size(2.5) Color(0xBB)"
	res := trace.Scan(input)
	if len(res.Texts) != 1 || len(res.Circles) != 2 {
		t.Fatalf("expected one text and two circles, got %d/%d", len(res.Texts), len(res.Circles))
	}
	if res.Circles[0].Content != "b" || res.Circles[1].Content != "c" {
		t.Fatalf("circle order must follow text order: %+v", res.Circles)
	}
}

func TestScanSingleLineConcatenatedInput(t *testing.T) {
	input := "[0.1] RENDER: Label(a) Position(1,2) Font(SMALL) Color(0xFF) " +
		"[0.2] RENDER: Label(b) Position(3,4) Font(SMALL) Color(0xFF)"
	res := trace.Scan(input)
	if len(res.Texts) != 2 {
		t.Fatalf("expected two text matches on one line, got %d", len(res.Texts))
	}
	if res.Texts[0].Content != "a" || res.Texts[1].Content != "b" {
		t.Fatalf("unexpected order: %+v", res.Texts)
	}
}

func TestScanToleratesArbitraryBracketPrefix(t *testing.T) {
	res := trace.Scan(`[2026-08-23T10:00:00 DEBUG] RENDER: Label(x) Position(1,1) Font(XTINY) Color(0x1)`)
	if len(res.Texts) != 1 {
		t.Fatalf("expected match despite verbose prefix, got %d", len(res.Texts))
	}
}

package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"garmindev/internal/render"
	"garmindev/internal/trace"
	"garmindev/internal/uistate"
)

var fixedNow = time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

func buildDoc(t *testing.T, logText string) *uistate.Document {
	t.Helper()
	return uistate.Build(trace.Scan(logText), uistate.Options{Now: fixedNow})
}

func TestXMLEndToEnd(t *testing.T) {
	input := "[0.1] RENDER: Screen(260x260) Center(130,130)\n" +
		"[0.2] RENDER: Label(Hi) Position(10,20) Font(LARGE) Color(0xFF0000)"
	doc := buildDoc(t, input)
	out := string(render.XML(doc))

	if !strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<garmin-ui-state version=\"1.0\">") {
		t.Fatalf("unexpected document head:\n%s", out)
	}
	if n := strings.Count(out, `<element id="label_1" type="text">`); n != 1 {
		t.Fatalf("expected exactly one text element block, found %d:\n%s", n, out)
	}
	for _, want := range []string{
		"<screen-width>260</screen-width>",
		"<font-weight>bold</font-weight>",
		"<font-size>24</font-size>",
		"<fill-color>#FF0000</fill-color>",
		"<z-index>10</z-index>",
		"<visible>true</visible>",
		"<opacity>1.0</opacity>",
		"<scale-factor>1.0</scale-factor>",
		"<text-content>Hi</text-content>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestXMLSortsByZIndexAscending(t *testing.T) {
	input := strings.Join([]string{
		"[1] RENDER: Label(top) Position(0,0) Font(SMALL) Color(0x1)",
		"[2] RENDER: Dot(bottom) Position(0,0) Size(1.0) Color(0x2)",
		"[3] RENDER: Box(mid) Position(0,0) Size(1x1) Color(0x3)",
	}, "\n")
	doc := buildDoc(t, input)
	out := string(render.XML(doc))

	circleAt := strings.Index(out, `type="circle"`)
	rectAt := strings.Index(out, `type="rect"`)
	textAt := strings.Index(out, `type="text"`)
	if circleAt < 0 || rectAt < 0 || textAt < 0 {
		t.Fatalf("missing element types:\n%s", out)
	}
	if !(circleAt < rectAt && rectAt < textAt) {
		t.Fatalf("expected z order circle < rect < text, got offsets %d/%d/%d", circleAt, rectAt, textAt)
	}

	// Serialization must not reorder the document itself.
	if doc.Elements[0].Type != "text" {
		t.Fatalf("document order changed by serialization: %+v", doc.Elements[0])
	}
}

func TestXMLStableTieBreakOnDiscoveryOrder(t *testing.T) {
	input := "[1] RENDER: Label(a) Position(0,0) Font(SMALL) Color(0x1)\n" +
		"[2] RENDER: Label(b) Position(0,0) Font(SMALL) Color(0x2)"
	out := string(render.XML(buildDoc(t, input)))
	first := strings.Index(out, `id="label_1"`)
	second := strings.Index(out, `id="label_2"`)
	if first < 0 || second < 0 || first > second {
		t.Fatalf("tie-break broke discovery order (%d vs %d):\n%s", first, second, out)
	}
}

func TestXMLRectAndCircleVariants(t *testing.T) {
	input := "[1] RENDER: Dot(d) Position(5,6) Size(7.5) Color(0xA)\n" +
		"[2] RENDER: Panel Position(0,0) Size(100x40) Color(0xBBCCDD)"
	out := string(render.XML(buildDoc(t, input)))
	for _, want := range []string{
		"<radius>7.5</radius>",
		`<dimensions width="100" height="40"/>`,
		"<fill-color>#00000A</fill-color>",
		"<fill-color>#BBCCDD</fill-color>",
		"<z-index>5</z-index>",
		"<z-index>8</z-index>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
}

func TestXMLWholeRadiusKeepsDecimalPoint(t *testing.T) {
	out := string(render.XML(buildDoc(t, "[1] RENDER: Dot(d) Position(0,0) Size(15) Color(0x1)")))
	if !strings.Contains(out, "<radius>15.0</radius>") {
		t.Fatalf("expected decimal radius:\n%s", out)
	}
}

func TestXMLLargeRadiusStaysPlainDecimal(t *testing.T) {
	out := string(render.XML(buildDoc(t, "[1] RENDER: Dot(d) Position(0,0) Size(1234567) Color(0x1)")))
	if !strings.Contains(out, "<radius>1234567.0</radius>") {
		t.Fatalf("expected plain decimal radius, not exponent notation:\n%s", out)
	}
}

func TestXMLDeterministic(t *testing.T) {
	doc := buildDoc(t, "[1] RENDER: Label(a) Position(0,0) Font(SMALL) Color(0x1)")
	first := render.XML(doc)
	second := render.XML(doc)
	if !bytes.Equal(first, second) {
		t.Fatal("repeated XML serialization differs")
	}
}

func TestJSONKeepsDocumentOrder(t *testing.T) {
	input := strings.Join([]string{
		"[1] RENDER: Dot(circle_first_in_log) Position(0,0) Size(1.0) Color(0x1)",
		"[2] RENDER: Label(text_first_in_doc) Position(0,0) Font(SMALL) Color(0x2)",
	}, "\n")
	doc := buildDoc(t, input)
	out, err := render.JSON(doc)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded struct {
		Version  string `json:"version"`
		Elements []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"elements"`
		State map[string]string `json:"state"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("round-trip decode: %v", err)
	}
	if decoded.Version != "1.0" {
		t.Fatalf("unexpected version: %q", decoded.Version)
	}
	if len(decoded.Elements) != 2 {
		t.Fatalf("expected two elements, got %d", len(decoded.Elements))
	}
	// Document order (text first), not z-index order.
	if decoded.Elements[0].Type != "text" || decoded.Elements[1].Type != "circle" {
		t.Fatalf("JSON must keep document order: %+v", decoded.Elements)
	}
	if decoded.State == nil || len(decoded.State) != 0 {
		t.Fatalf("expected empty state map, got %#v", decoded.State)
	}
}

func TestJSONVariantFieldsOmitted(t *testing.T) {
	input := "[1] RENDER: Dot(d) Position(0,0) Size(1.0) Color(0x1)"
	out, err := render.JSON(buildDoc(t, input))
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	s := string(out)
	if strings.Contains(s, "text_content") || strings.Contains(s, "width") {
		t.Fatalf("circle record carries foreign variant fields:\n%s", s)
	}
	if !strings.Contains(s, `"radius": 1`) {
		t.Fatalf("missing radius:\n%s", s)
	}
}

func TestJSONDeterministic(t *testing.T) {
	doc := buildDoc(t, "[1] RENDER: Label(a) Position(0,0) Font(SMALL) Color(0x1)")
	first, err := render.JSON(doc)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	second, err := render.JSON(doc)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("repeated JSON serialization differs")
	}
}

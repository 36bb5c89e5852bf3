package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"garmindev/internal/uistate"
)

// XML renders the document to the garmin-ui-state XML schema. Elements
// are emitted in ascending z-index order with the original discovery
// order as tie-break. Text content is inserted verbatim: the upstream
// trace format never escaped it, and consumers diff this output, so the
// writer inherits that behavior instead of escaping.
func XML(doc *uistate.Document) []byte {
	var b strings.Builder

	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<garmin-ui-state version=%q>\n", doc.Version)

	b.WriteString("  <metadata>\n")
	fmt.Fprintf(&b, "    <app-name>%s</app-name>\n", doc.Metadata.AppName)
	fmt.Fprintf(&b, "    <device-model>%s</device-model>\n", doc.Metadata.DeviceModel)
	fmt.Fprintf(&b, "    <screen-width>%d</screen-width>\n", doc.Metadata.ScreenWidth)
	fmt.Fprintf(&b, "    <screen-height>%d</screen-height>\n", doc.Metadata.ScreenHeight)
	fmt.Fprintf(&b, "    <timestamp>%s</timestamp>\n", doc.Metadata.Timestamp)
	fmt.Fprintf(&b, "    <capture-source>%s</capture-source>\n", doc.Metadata.CaptureSource)
	b.WriteString("  </metadata>\n")

	b.WriteString("  <screen>\n")
	fmt.Fprintf(&b, "    <background-color>%s</background-color>\n", doc.Screen.BackgroundColor)
	fmt.Fprintf(&b, "    <scale-factor>%s</scale-factor>\n", formatDecimal(doc.Screen.ScaleFactor))
	fmt.Fprintf(&b, "    <center-x>%d</center-x>\n", doc.Screen.CenterX)
	fmt.Fprintf(&b, "    <center-y>%d</center-y>\n", doc.Screen.CenterY)
	b.WriteString("  </screen>\n")

	b.WriteString("  <elements>\n")
	for _, el := range sortedByZIndex(doc.Elements) {
		writeElement(&b, el)
	}
	b.WriteString("  </elements>\n")
	b.WriteString("</garmin-ui-state>")

	return []byte(b.String())
}

func writeElement(b *strings.Builder, el uistate.Element) {
	fmt.Fprintf(b, "    <element id=%q type=%q>\n", el.ID, el.Type)
	fmt.Fprintf(b, "      <position x=\"%d\" y=\"%d\"/>\n", el.X, el.Y)

	switch el.Type {
	case uistate.TypeText:
		content := ""
		if el.TextContent != nil {
			content = *el.TextContent
		}
		fmt.Fprintf(b, "      <text-content>%s</text-content>\n", content)
		fmt.Fprintf(b, "      <font-family>%s</font-family>\n", el.FontFamily)
		fmt.Fprintf(b, "      <font-size>%d</font-size>\n", el.FontSize)
		fmt.Fprintf(b, "      <font-weight>%s</font-weight>\n", el.FontWeight)
		fmt.Fprintf(b, "      <text-anchor>%s</text-anchor>\n", el.TextAnchor)
	case uistate.TypeCircle:
		radius := 0.0
		if el.Radius != nil {
			radius = *el.Radius
		}
		fmt.Fprintf(b, "      <radius>%s</radius>\n", formatDecimal(radius))
	case uistate.TypeRect:
		width, height := 0, 0
		if el.Width != nil {
			width = *el.Width
		}
		if el.Height != nil {
			height = *el.Height
		}
		fmt.Fprintf(b, "      <dimensions width=\"%d\" height=\"%d\"/>\n", width, height)
	}

	fmt.Fprintf(b, "      <fill-color>%s</fill-color>\n", el.FillColor)
	fmt.Fprintf(b, "      <z-index>%d</z-index>\n", el.ZIndex)
	fmt.Fprintf(b, "      <visible>%s</visible>\n", strconv.FormatBool(el.Visible))
	fmt.Fprintf(b, "      <opacity>%s</opacity>\n", formatDecimal(el.Opacity))
	b.WriteString("    </element>\n")
}

// sortedByZIndex copies the element slice so serialization never
// reorders the document itself.
func sortedByZIndex(elements []uistate.Element) []uistate.Element {
	sorted := make([]uistate.Element, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ZIndex < sorted[j].ZIndex
	})
	return sorted
}

// formatDecimal renders a float in plain decimal notation with a
// trailing .0 for whole values so scale factors, opacities, and radii
// read as decimals ("1.0", not "1") at any magnitude.
func formatDecimal(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

package uistate

import (
	"fmt"
	"strings"
	"time"

	"garmindev/internal/trace"
)

// Defaults used when the trace or caller does not supply a value.
const (
	DefaultAppName      = "Garmin App"
	DefaultDeviceModel  = "fenix7"
	DefaultScreenWidth  = 260
	DefaultScreenHeight = 260
	DefaultBackground   = "#000000"

	captureSource = "debug_logs"
)

// Font token to pixel size. Unrecognized tokens fall back to 16.
var fontSizes = map[string]int{
	"LARGE":  24,
	"MEDIUM": 18,
	"SMALL":  14,
	"XTINY":  10,
}

const defaultFontSize = 16

// Options adjusts document construction. Zero values pick the stated
// defaults; Now defaults to the current wall clock in UTC.
type Options struct {
	Device  string
	AppName string
	Now     time.Time
}

// Build assembles one Document from a trace scan. It never fails:
// missing categories simply leave their portion of the document at its
// defaults.
func Build(scan trace.Result, opts Options) *Document {
	doc := &Document{
		Version: SchemaVersion,
		Metadata: Metadata{
			AppName:       defaultString(opts.AppName, DefaultAppName),
			DeviceModel:   defaultString(opts.Device, DefaultDeviceModel),
			ScreenWidth:   DefaultScreenWidth,
			ScreenHeight:  DefaultScreenHeight,
			Timestamp:     timestamp(opts.Now),
			CaptureSource: captureSource,
		},
		Screen: Screen{
			BackgroundColor: DefaultBackground,
			ScaleFactor:     1.0,
			CenterX:         DefaultScreenWidth / 2,
			CenterY:         DefaultScreenHeight / 2,
		},
		State: map[string]string{},
	}

	if scan.Screen != nil {
		doc.Metadata.ScreenWidth = scan.Screen.Width
		doc.Metadata.ScreenHeight = scan.Screen.Height
		doc.Screen.CenterX = scan.Screen.CenterX
		doc.Screen.CenterY = scan.Screen.CenterY
	}

	// One shared counter across the three loops; text, then circle,
	// then rect is the documented discovery order.
	seq := 1

	for _, m := range scan.Texts {
		content := m.Content
		doc.Elements = append(doc.Elements, Element{
			ID:          elementID(m.Name, seq),
			Type:        TypeText,
			X:           m.X,
			Y:           m.Y,
			TextContent: &content,
			FontFamily:  strings.ToLower(m.Font),
			FontSize:    FontSize(m.Font),
			FontWeight:  fontWeight(m.Font),
			FillColor:   NormalizeColor(m.Color),
			TextAnchor:  "middle",
			ZIndex:      ZIndexText,
			Visible:     true,
			Opacity:     1.0,
		})
		seq++
	}

	for _, m := range scan.Circles {
		radius := m.Size
		doc.Elements = append(doc.Elements, Element{
			ID:        elementID(m.Name, seq),
			Type:      TypeCircle,
			X:         m.X,
			Y:         m.Y,
			Radius:    &radius,
			FillColor: NormalizeColor(m.Color),
			ZIndex:    ZIndexCircle,
			Visible:   true,
			Opacity:   1.0,
		})
		seq++
	}

	for _, m := range scan.Rects {
		width, height := m.Width, m.Height
		doc.Elements = append(doc.Elements, Element{
			ID:        elementID(m.Name, seq),
			Type:      TypeRect,
			X:         m.X,
			Y:         m.Y,
			Width:     &width,
			Height:    &height,
			FillColor: NormalizeColor(m.Color),
			ZIndex:    ZIndexRect,
			Visible:   true,
			Opacity:   1.0,
		})
		seq++
	}

	return doc
}

// FontSize maps a Connect IQ font token to a pixel size. The lookup is
// case-insensitive; unknown tokens map to 16.
func FontSize(font string) int {
	if size, ok := fontSizes[strings.ToUpper(font)]; ok {
		return size
	}
	return defaultFontSize
}

func fontWeight(font string) string {
	if strings.Contains(font, "LARGE") {
		return "bold"
	}
	return "normal"
}

// NormalizeColor converts a 0x-prefixed trace color token to a #RRGGBB
// string, left-padding short tokens with zeros. Tokens without the 0x
// prefix pass through unchanged.
func NormalizeColor(color string) string {
	if !strings.HasPrefix(color, "0x") {
		return color
	}
	digits := color[2:]
	if len(digits) < 6 {
		digits = strings.Repeat("0", 6-len(digits)) + digits
	}
	return "#" + digits
}

func elementID(name string, seq int) string {
	return fmt.Sprintf("%s_%d", strings.ToLower(name), seq)
}

func timestamp(now time.Time) string {
	if now.IsZero() {
		now = time.Now()
	}
	return now.UTC().Format(time.RFC3339)
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

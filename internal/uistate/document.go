package uistate

// SchemaVersion is the document schema tag emitted in every projection.
const SchemaVersion = "1.0"

// Element type tags.
const (
	TypeText   = "text"
	TypeCircle = "circle"
	TypeRect   = "rect"
)

// Fixed per-type stacking order. Text renders above rects, rects above
// circles; not configurable.
const (
	ZIndexText   = 10
	ZIndexCircle = 5
	ZIndexRect   = 8
)

// Metadata carries capture-wide attributes.
type Metadata struct {
	AppName       string `json:"app_name"`
	DeviceModel   string `json:"device_model"`
	ScreenWidth   int    `json:"screen_width"`
	ScreenHeight  int    `json:"screen_height"`
	Timestamp     string `json:"timestamp"`
	CaptureSource string `json:"capture_source"`
}

// Screen describes the render surface.
type Screen struct {
	BackgroundColor string  `json:"background_color"`
	ScaleFactor     float64 `json:"scale_factor"`
	CenterX         int     `json:"center_x"`
	CenterY         int     `json:"center_y"`
}

// Element is one visual primitive. Type selects which of the optional
// fields are populated; pointers distinguish "absent" from zero values
// in the JSON projection.
type Element struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	X           int      `json:"x"`
	Y           int      `json:"y"`
	TextContent *string  `json:"text_content,omitempty"`
	FontFamily  string   `json:"font_family,omitempty"`
	FontSize    int      `json:"font_size,omitempty"`
	FontWeight  string   `json:"font_weight,omitempty"`
	Radius      *float64 `json:"radius,omitempty"`
	Width       *int     `json:"width,omitempty"`
	Height      *int     `json:"height,omitempty"`
	FillColor   string   `json:"fill_color"`
	TextAnchor  string   `json:"text_anchor,omitempty"`
	ZIndex      int      `json:"z_index"`
	Visible     bool     `json:"visible"`
	Opacity     float64  `json:"opacity"`
}

// Document is the canonical UI-state model. Elements keep discovery
// order: all texts, then all circles, then all rects. State is reserved
// for future state-line projection and stays empty.
type Document struct {
	Version  string            `json:"version"`
	Metadata Metadata          `json:"metadata"`
	Screen   Screen            `json:"screen"`
	Elements []Element         `json:"elements"`
	State    map[string]string `json:"state"`
}

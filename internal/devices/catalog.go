// Package devices catalogs the Connect IQ devices garmin-dev knows
// about and watches for watches attached over USB.
package devices

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Device describes one supported device model.
type Device struct {
	ID           string
	DisplayName  string
	ScreenWidth  int
	ScreenHeight int
	Shape        string
}

// Screen shapes.
const (
	ShapeRound     = "round"
	ShapeRectangle = "rectangle"
)

var catalog = []Device{
	{ID: "fenix7", DisplayName: "Fēnix 7", ScreenWidth: 260, ScreenHeight: 260, Shape: ShapeRound},
	{ID: "fenix7s", DisplayName: "Fēnix 7S", ScreenWidth: 240, ScreenHeight: 240, Shape: ShapeRound},
	{ID: "fenix7x", DisplayName: "Fēnix 7X", ScreenWidth: 280, ScreenHeight: 280, Shape: ShapeRound},
	{ID: "fr965", DisplayName: "Forerunner 965", ScreenWidth: 454, ScreenHeight: 454, Shape: ShapeRound},
	{ID: "fr955", DisplayName: "Forerunner 955", ScreenWidth: 260, ScreenHeight: 260, Shape: ShapeRound},
	{ID: "epix2", DisplayName: "Epix (Gen 2)", ScreenWidth: 416, ScreenHeight: 416, Shape: ShapeRound},
	{ID: "venu2", DisplayName: "Venu 2", ScreenWidth: 416, ScreenHeight: 416, Shape: ShapeRound},
	{ID: "vivoactive4", DisplayName: "Vívoactive 4", ScreenWidth: 260, ScreenHeight: 260, Shape: ShapeRound},
	{ID: "edge1040", DisplayName: "Edge 1040", ScreenWidth: 282, ScreenHeight: 470, Shape: ShapeRectangle},
}

// List returns the supported devices sorted by ID.
func List() []Device {
	out := make([]Device, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup finds a device by its ID (case-insensitive). The second return
// reports whether the device is in the catalog.
func Lookup(id string) (Device, bool) {
	needle := strings.ToLower(strings.TrimSpace(id))
	for _, d := range catalog {
		if d.ID == needle {
			return d, true
		}
	}
	return Device{}, false
}

// IsSupported reports whether the device ID is in the catalog.
func IsSupported(id string) bool {
	_, ok := Lookup(id)
	return ok
}

var titleCaser = cases.Title(language.English)

// DisplayName returns the catalog display name, or a title-cased guess
// for IDs the catalog does not know (e.g. "fr165" -> "Fr 165").
func DisplayName(id string) string {
	if d, ok := Lookup(id); ok {
		return d.DisplayName
	}
	trimmed := strings.ToLower(strings.TrimSpace(id))
	if trimmed == "" {
		return ""
	}
	split := strings.TrimRightFunc(trimmed, unicode.IsDigit)
	digits := trimmed[len(split):]
	name := titleCaser.String(split)
	if digits != "" {
		if name != "" {
			name += " "
		}
		name += digits
	}
	return name
}

package devices_test

import (
	"sort"
	"testing"

	"garmindev/internal/devices"
)

func TestListIsSortedAndNonEmpty(t *testing.T) {
	list := devices.List()
	if len(list) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	ids := make([]string, 0, len(list))
	for _, d := range list {
		ids = append(ids, d.ID)
		if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
			t.Fatalf("device %s has invalid geometry: %+v", d.ID, d)
		}
		if d.DisplayName == "" {
			t.Fatalf("device %s missing display name", d.ID)
		}
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("catalog not sorted: %v", ids)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	d, ok := devices.Lookup(" Fenix7 ")
	if !ok {
		t.Fatal("expected fenix7 in catalog")
	}
	if d.ScreenWidth != 260 || d.ScreenHeight != 260 {
		t.Fatalf("unexpected fenix7 geometry: %+v", d)
	}
	if _, ok := devices.Lookup("fr999"); ok {
		t.Fatal("unexpected match for unknown device")
	}
}

func TestDisplayNameFallsBackToTitleCase(t *testing.T) {
	if got := devices.DisplayName("venu2"); got != "Venu 2" {
		t.Fatalf("catalog display name: got %q", got)
	}
	if got := devices.DisplayName("instinct3"); got != "Instinct 3" {
		t.Fatalf("fallback display name: got %q", got)
	}
	if got := devices.DisplayName(""); got != "" {
		t.Fatalf("empty id should yield empty name, got %q", got)
	}
}

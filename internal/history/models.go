package history

import "time"

// Run is one recorded capture run.
type Run struct {
	ID             int64
	RunID          string
	DeviceModel    string
	OutputFormat   string
	OutputPath     string
	TextElements   int
	CircleElements int
	RectElements   int
	ScreenWidth    int
	ScreenHeight   int
	CreatedAt      time.Time
}

// TotalElements returns the combined element count for the run.
func (r Run) TotalElements() int {
	return r.TextElements + r.CircleElements + r.RectElements
}

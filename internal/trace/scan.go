package trace

import (
	"regexp"
	"strconv"
)

// Line grammars for the trace categories. Every line starts with a
// bracketed prefix (timestamp or log tag) whose content is irrelevant.
var (
	screenPattern = regexp.MustCompile(`\[.*?\] RENDER: Screen\((\d+)x(\d+)\) Center\((\d+),(\d+)\)`)
	textPattern   = regexp.MustCompile(`\[.*?\] RENDER: (\w+)\(([^)]+)\) Position\((\d+),(\d+)\) Font\((\w+)\) Color\((0x[0-9a-fA-F]+)\)`)
	circlePattern = regexp.MustCompile(`\[.*?\] RENDER: (\w+)\(([^)]+)\) Position\((\d+),(\d+)\) Size\(([0-9.]+)\) Color\((0x[0-9a-fA-F]+)\)`)
	rectPattern   = regexp.MustCompile(`\[.*?\] RENDER: (\w+)(?:\(([^)]+)\))? Position\((\d+),(\d+)\) Size\((\d+)x(\d+)\) Color\((0x[0-9a-fA-F]+)\)`)
	layoutPattern = regexp.MustCompile(`\[.*?\] LAYOUT: (\w+)\(([^)]+)\)`)
	statePattern  = regexp.MustCompile(`\[.*?\] STATE: (\w+)\(([^)]+)\)`)
)

// Screen describes the screen geometry line.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// Text is one text draw line.
type Text struct {
	Name    string
	Content string
	X       int
	Y       int
	Font    string
	Color   string
}

// Circle is one circle draw line.
type Circle struct {
	Name    string
	Content string
	X       int
	Y       int
	Size    float64
	Color   string
}

// Rect is one rectangle draw line. Content is empty when the optional
// label group is absent.
type Rect struct {
	Name    string
	Content string
	X       int
	Y       int
	Width   int
	Height  int
	Color   string
}

// Tag is a layout or state line. These are recognized so they do not
// leak into other categories but are not projected into elements.
type Tag struct {
	Name    string
	Content string
}

// Result holds the per-category matches from one scan. Slices preserve
// the order the matches occur in the text.
type Result struct {
	Screen  *Screen
	Texts   []Text
	Circles []Circle
	Rects   []Rect
	Layouts []Tag
	States  []Tag
}

// Scan runs every category grammar over the full log text. Only the
// first screen geometry line is honored; later ones are ignored.
func Scan(logText string) Result {
	var res Result

	if groups := screenPattern.FindStringSubmatch(logText); groups != nil {
		width, okW := parseInt(groups[1])
		height, okH := parseInt(groups[2])
		centerX, okX := parseInt(groups[3])
		centerY, okY := parseInt(groups[4])
		if okW && okH && okX && okY {
			res.Screen = &Screen{Width: width, Height: height, CenterX: centerX, CenterY: centerY}
		}
	}

	for _, groups := range textPattern.FindAllStringSubmatch(logText, -1) {
		x, okX := parseInt(groups[3])
		y, okY := parseInt(groups[4])
		if !okX || !okY {
			continue
		}
		res.Texts = append(res.Texts, Text{
			Name:    groups[1],
			Content: groups[2],
			X:       x,
			Y:       y,
			Font:    groups[5],
			Color:   groups[6],
		})
	}

	for _, groups := range circlePattern.FindAllStringSubmatch(logText, -1) {
		x, okX := parseInt(groups[3])
		y, okY := parseInt(groups[4])
		size, err := strconv.ParseFloat(groups[5], 64)
		if !okX || !okY || err != nil {
			continue
		}
		res.Circles = append(res.Circles, Circle{
			Name:    groups[1],
			Content: groups[2],
			X:       x,
			Y:       y,
			Size:    size,
			Color:   groups[6],
		})
	}

	for _, groups := range rectPattern.FindAllStringSubmatch(logText, -1) {
		x, okX := parseInt(groups[3])
		y, okY := parseInt(groups[4])
		width, okW := parseInt(groups[5])
		height, okH := parseInt(groups[6])
		if !okX || !okY || !okW || !okH {
			continue
		}
		res.Rects = append(res.Rects, Rect{
			Name:    groups[1],
			Content: groups[2],
			X:       x,
			Y:       y,
			Width:   width,
			Height:  height,
			Color:   groups[7],
		})
	}

	for _, groups := range layoutPattern.FindAllStringSubmatch(logText, -1) {
		res.Layouts = append(res.Layouts, Tag{Name: groups[1], Content: groups[2]})
	}
	for _, groups := range statePattern.FindAllStringSubmatch(logText, -1) {
		res.States = append(res.States, Tag{Name: groups[1], Content: groups[2]})
	}

	return res
}

// ElementCount reports how many element-producing matches the scan found.
func (r Result) ElementCount() int {
	return len(r.Texts) + len(r.Circles) + len(r.Rects)
}

func parseInt(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

package domain

import "sort"

// CanvasSpec is a named target canvas with exact pixel dimensions.
type CanvasSpec struct {
	Name   string
	Width  int
	Height int
}

// canvasPresets covers the common social formats. Built once, never mutated.
var canvasPresets = map[string]CanvasSpec{
	"story":  {Name: "story", Width: 1080, Height: 1920},
	"post":   {Name: "post", Width: 1080, Height: 1350},
	"square": {Name: "square", Width: 1080, Height: 1080},
}

// PresetByName looks up a canvas preset by its CLI name.
func PresetByName(name string) (CanvasSpec, bool) {
	spec, ok := canvasPresets[name]
	return spec, ok
}

// PresetNames returns the known preset names in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(canvasPresets))
	for name := range canvasPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

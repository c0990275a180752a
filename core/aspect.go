// aspect.go maps aspect ratio names to generation dimensions.
package core

import "fmt"

// Dimensions is an image size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// DefaultAspectRatio is the classic tarot card proportion.
const DefaultAspectRatio = "2:3"

// aspectDimensions maps each supported aspect ratio to the SDXL-native
// generation size. Flux accepts the ratio string directly; SDXL and
// the local crop both work from these dimensions.
var aspectDimensions = map[string]Dimensions{
	"1:1":  {1024, 1024},
	"16:9": {1344, 768},
	"9:16": {768, 1344},
	"2:3":  {768, 1152},
	"3:2":  {1152, 768},
	"4:5":  {896, 1120},
	"5:4":  {1120, 896},
	"21:9": {1536, 640},
	"9:21": {640, 1536},
}

// AspectDimensions returns the generation dimensions for a supported
// aspect ratio.
func AspectDimensions(ratio string) (Dimensions, error) {
	d, ok := aspectDimensions[ratio]
	if !ok {
		return Dimensions{}, fmt.Errorf("core: unsupported aspect ratio %q", ratio)
	}
	return d, nil
}

// SupportedAspectRatio reports whether ratio names a known aspect.
func SupportedAspectRatio(ratio string) bool {
	_, ok := aspectDimensions[ratio]
	return ok
}

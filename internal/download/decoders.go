package download

import (
	"image"
	"sort"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// supportedFormats mirrors the decoders imported above
var supportedFormats = []string{"bmp", "gif", "jpeg", "png", "tiff", "webp"}

// SupportedFormats returns the image formats the fetch stage can decode
func SupportedFormats() []string {
	out := make([]string, len(supportedFormats))
	copy(out, supportedFormats)
	sort.Strings(out)
	return out
}

func isNilImage(img image.Image) bool {
	if img == nil {
		return true
	}
	b := img.Bounds()
	return b.Empty()
}

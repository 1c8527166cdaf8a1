package compress

import (
	"context"
	"image"
)

// Encoder defines the interface for the JPEG persistence service.
type Encoder interface {
	// SaveJPEG encodes img and replaces dir/filename with the result.
	SaveJPEG(ctx context.Context, img image.Image, dir, filename string) (path string, size int64, err error)
	SetQuality(quality int)
	Quality() int
}

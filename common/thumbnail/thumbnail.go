package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"github.com/disintegration/imaging"
)

// Quality is the JPEG encode quality for all thumbnails.
const Quality = 95

// Make decodes a JPEG buffer and returns a width x height JPEG thumbnail,
// cropped to the target aspect with a linear filter. A buffer that does not
// decode yields a solid black placeholder of the same dimensions, so a
// corrupt source image never blocks the pipeline.
func Make(data []byte, width, height int) ([]byte, error) {
	src, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return placeholder(width, height)
	}

	thumb := imaging.Fill(src, width, height, imaging.Center, imaging.Linear)
	return encode(thumb)
}

// placeholder returns a solid black JPEG of the requested size.
func placeholder(width, height int) ([]byte, error) {
	img := imaging.New(width, height, color.Black)
	return encode(img)
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

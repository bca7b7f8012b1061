package thumbnail

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xA0
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("thumbnail is not a decodable JPEG: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestMake_ExactDimensions(t *testing.T) {
	cases := []struct {
		name string
		srcW int
		srcH int
	}{
		{"landscape", 1280, 720},
		{"portrait", 600, 1000},
		{"square", 500, 500},
		{"smaller than target", 100, 80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			thumb, err := Make(encodeJPEG(t, tc.srcW, tc.srcH), 400, 400)
			if err != nil {
				t.Fatalf("Make failed: %v", err)
			}
			w, h := decodeSize(t, thumb)
			if w != 400 || h != 400 {
				t.Errorf("expected 400x400, got %dx%d", w, h)
			}
		})
	}
}

func TestMake_CorruptInputYieldsPlaceholder(t *testing.T) {
	thumb, err := Make([]byte("not a jpeg at all"), 400, 400)
	if err != nil {
		t.Fatalf("Make failed on corrupt input: %v", err)
	}

	w, h := decodeSize(t, thumb)
	if w != 400 || h != 400 {
		t.Errorf("expected 400x400 placeholder, got %dx%d", w, h)
	}
}

func TestMake_EmptyInputYieldsPlaceholder(t *testing.T) {
	thumb, err := Make(nil, 200, 150)
	if err != nil {
		t.Fatalf("Make failed on empty input: %v", err)
	}

	w, h := decodeSize(t, thumb)
	if w != 200 || h != 150 {
		t.Errorf("expected 200x150 placeholder, got %dx%d", w, h)
	}
}

func TestMake_Deterministic(t *testing.T) {
	src := encodeJPEG(t, 800, 600)

	a, err := Make(src, 400, 400)
	if err != nil {
		t.Fatalf("first Make failed: %v", err)
	}
	b, err := Make(src, 400, 400)
	if err != nil {
		t.Fatalf("second Make failed: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Error("identical input produced different thumbnails")
	}
}

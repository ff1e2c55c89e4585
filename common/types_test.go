package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestTextureAssetDecode(t *testing.T) {
	asset := &TextureAsset{Name: "test", Data: encodeTestPNG(t, 8, 4)}
	staging, err := asset.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if staging.Width != 8 || staging.Height != 4 {
		t.Fatalf("dimensions %dx%d, want 8x4", staging.Width, staging.Height)
	}
	if len(staging.Pixels) != 8*4*4 {
		t.Fatalf("pixel bytes %d, want %d", len(staging.Pixels), 8*4*4)
	}
}

func TestTextureAssetDecodeErrors(t *testing.T) {
	var nilAsset *TextureAsset
	if _, err := nilAsset.Decode(); err == nil {
		t.Fatal("expected error for nil asset")
	}
	if _, err := (&TextureAsset{Name: "empty"}).Decode(); err == nil {
		t.Fatal("expected error for asset with no data or path")
	}
	if _, err := (&TextureAsset{Name: "garbage", Data: []byte("not an image")}).Decode(); err == nil {
		t.Fatal("expected error for undecodable data")
	}
}

func TestTextureAssetDecodeOrFallback(t *testing.T) {
	var nilAsset *TextureAsset
	staging := nilAsset.DecodeOrFallback()
	if staging.Width != 1 || staging.Height != 1 {
		t.Fatalf("fallback dimensions %dx%d, want 1x1", staging.Width, staging.Height)
	}
	if len(staging.Pixels) != 4 || staging.Pixels[0] != 0xff {
		t.Fatalf("fallback pixel %v, want opaque white", staging.Pixels)
	}

	good := &TextureAsset{Name: "good", Data: encodeTestPNG(t, 2, 2)}
	staging = good.DecodeOrFallback()
	if staging.Width != 2 || staging.Height != 2 {
		t.Fatalf("decodable asset fell back: %dx%d", staging.Width, staging.Height)
	}
}

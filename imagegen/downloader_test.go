package imagegen

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// testPNG encodes a small gradient image so every pixel is distinct.
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 7), uint8(y * 11), uint8(x + y), 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func pngServer(t *testing.T, data []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestDownloadBytes(t *testing.T) {
	data := testPNG(t, 8, 8)
	server := pngServer(t, data)

	d := NewDownloader(nil)
	got, contentType, err := d.DownloadBytes(context.Background(), server.URL+"/image.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "image/png" {
		t.Errorf("content type = %q, want image/png", contentType)
	}
	if !bytes.Equal(got, data) {
		t.Error("downloaded bytes differ from served bytes")
	}
}

func TestDownloadBytes_EmptyURL(t *testing.T) {
	d := NewDownloader(nil)
	if _, _, err := d.DownloadBytes(context.Background(), ""); err == nil {
		t.Error("expected error for empty URL")
	}
}

func TestDownloadBytes_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	d := NewDownloader(nil)
	_, _, err := d.DownloadBytes(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should mention status code: %v", err)
	}
}

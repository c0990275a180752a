// downloader.go fetches generated images from the temporary URLs the
// providers return.
package imagegen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Downloader fetches generated images over HTTP.
//
// Provider output URLs are temporary (Replicate and OpenAI both
// expire them within about an hour), so images are downloaded as soon
// as a prediction finishes.
//
// Thread safety: safe for concurrent use. Each download creates its
// own request.
type Downloader struct {
	client *http.Client
}

// NewDownloader creates a downloader. A nil client gets a default
// with a 60 second timeout.
func NewDownloader(client *http.Client) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Downloader{client: client}
}

// DownloadBytes fetches a URL and returns the body and Content-Type.
func (d *Downloader) DownloadBytes(ctx context.Context, url string) ([]byte, string, error) {
	if url == "" {
		return nil, "", fmt.Errorf("imagegen: URL cannot be empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("imagegen: failed to create download request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("imagegen: failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("imagegen: download failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("imagegen: failed to read image data: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

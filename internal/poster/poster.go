// Package poster downloads poster images to a local directory, resizing
// oversized ones on the way down.
package poster

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

const defaultMaxWidth = 500

// httpClient is overridable in tests.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// Save downloads the image at imageURL into dir, scaled down to maxWidth
// when wider. It returns the full path of the written file. A maxWidth of
// zero or less means the default width.
func Save(ctx context.Context, imageURL, dir, filename string, maxWidth int) (string, error) {
	if imageURL == "" {
		return "", fmt.Errorf("no poster URL to download")
	}
	if maxWidth <= 0 {
		maxWidth = defaultMaxWidth
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download poster: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d downloading poster from %s", resp.StatusCode, imageURL)
	}

	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode poster: %w", err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	savePath := filepath.Join(dir, filename)
	if err := imaging.Save(img, savePath, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to save poster: %w", err)
	}
	return savePath, nil
}

// Filename builds a poster filename from a movie title.
func Filename(title string) string {
	return SanitizeFilename(title) + " - poster.jpg"
}

// SanitizeFilename replaces characters that break filesystem paths.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return name
}

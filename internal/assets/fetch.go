package assets

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const fetchTimeout = 60 * time.Second

// Fetch downloads an external asset reference into cacheDir and returns the
// saved path. The filename comes from the URL path; the extension must be a
// supported model extension (checked before any network traffic).
func Fetch(url, cacheDir string) (savedPath string, err error) {
	name := NameFromPath(url)
	ext := extFromURL(url)
	if _, ok := supportedExts[ext]; !ok {
		return "", fmt.Errorf("fetch %q: unsupported extension (want .glb or .json)", url)
	}

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %q: HTTP %d", url, resp.StatusCode)
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("fetch %q: %w", url, err)
	}
	savedPath = filepath.Join(cacheDir, sanitizeName(name)+ext)
	out, err := os.Create(savedPath)
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", url, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = os.Remove(savedPath)
		return "", fmt.Errorf("fetch %q: %w", url, err)
	}
	return savedPath, nil
}

func extFromURL(url string) string {
	p := url
	if i := strings.Index(p, "?"); i >= 0 {
		p = p[:i]
	}
	return strings.ToLower(filepath.Ext(p))
}

var unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeName(name string) string {
	if name == "" {
		return "asset"
	}
	name = unsafeNameRe.ReplaceAllString(name, "_")
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}

// Package assets turns mesh files into library payloads. It owns the
// boundary checks the store deliberately does not do: supported extensions
// and name collisions are handled here (or in the console), never inside
// the store.
package assets

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Supported model extensions. Anything else is rejected at import.
var supportedExts = map[string]string{
	".glb":  "model/gltf-binary",
	".json": "application/json",
}

// IsSupported reports whether path has an importable model extension.
func IsSupported(path string) bool {
	_, ok := supportedExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// NameFromPath derives the library asset name from a file path or URL:
// the base name without its extension.
func NameFromPath(p string) string {
	p = strings.TrimSuffix(p, "/")
	if i := strings.Index(p, "?"); i >= 0 {
		p = p[:i]
	}
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ImportFile reads a local model file and returns its embedded payload
// reference (a data: URI). Embedded payloads travel inside full saves, so a
// document is self-contained.
func ImportFile(path string) (url string, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	mime, ok := supportedExts[ext]
	if !ok {
		return "", fmt.Errorf("import %q: unsupported extension (want .glb or .json)", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("import %q: %w", path, err)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// IsEmbedded reports whether url is an embedded payload rather than an
// external reference.
func IsEmbedded(url string) bool {
	return strings.HasPrefix(url, "data:")
}

// PayloadBytes decodes an embedded payload back into model bytes and the
// extension it should be materialized with. External references return
// ok=false; fetch those with Fetch instead.
func PayloadBytes(url string) (data []byte, ext string, err error) {
	if !IsEmbedded(url) {
		return nil, "", fmt.Errorf("payload: %q is not embedded", url)
	}
	rest := strings.TrimPrefix(url, "data:")
	meta, b64, found := strings.Cut(rest, ",")
	if !found {
		return nil, "", fmt.Errorf("payload: malformed data reference")
	}
	mime, _, _ := strings.Cut(meta, ";")
	ext = ".glb"
	for e, m := range supportedExts {
		if m == mime {
			ext = e
			break
		}
	}
	data, err = base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, "", fmt.Errorf("payload: %w", err)
	}
	return data, ext, nil
}

// Materialize writes an embedded payload to cacheDir so file-based loaders
// (raylib) can read it. Returns the written path.
func Materialize(url, name, cacheDir string) (string, error) {
	data, ext, err := PayloadBytes(url)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("materialize %q: %w", name, err)
	}
	path := filepath.Join(cacheDir, sanitizeName(name)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("materialize %q: %w", name, err)
	}
	return path, nil
}

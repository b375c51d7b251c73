package assets

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ImagePattern matches every image-like file below an asset root.
const ImagePattern = "**/*.{png,jpg,jpeg,svg,gif,webp}"

// Manifest maps canonical asset keys to the URL each asset is served at.
// It is immutable once built.
type Manifest struct {
	urls  map[string]string
	files map[string]string
}

// NewManifest builds a manifest from literal key/URL pairs. The entries are
// copied, so later changes to the map are not observed.
func NewManifest(entries map[string]string) *Manifest {
	m := &Manifest{
		urls:  make(map[string]string, len(entries)),
		files: map[string]string{},
	}
	for k, v := range entries {
		m.urls[k] = v
	}
	return m
}

// BuildManifest scans root inside fsys for images and fingerprints each one.
// Every file is indexed under two key shapes: "./<path>" and "/src/<path>",
// where <path> is the file's location inside fsys.
func BuildManifest(fsys fs.FS, root, baseURL string) (*Manifest, error) {
	matches, err := doublestar.Glob(fsys, path.Join(root, ImagePattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", root, err)
	}

	m := &Manifest{
		urls:  make(map[string]string, len(matches)*2),
		files: make(map[string]string, len(matches)),
	}
	base := strings.TrimSuffix(baseURL, "/")

	for _, p := range matches {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read asset %s: %w", p, err)
		}

		served := fingerprint(strings.TrimPrefix(p, strings.TrimSuffix(root, "/")+"/"), data)
		m.files[served] = p

		u := base + "/img/" + escapeSegments(served)
		m.urls["./"+p] = u
		m.urls["/src/"+p] = u
	}
	return m, nil
}

// fingerprint inserts a short content hash before the extension:
// "shots/a.png" becomes "shots/a.1f2e3d4c.png".
func fingerprint(rel string, data []byte) string {
	sum := sha256.Sum256(data)
	ext := path.Ext(rel)
	return fmt.Sprintf("%s.%x%s", strings.TrimSuffix(rel, ext), sum[:4], ext)
}

func escapeSegments(p string) string {
	parts := strings.Split(p, "/")
	for i, s := range parts {
		parts[i] = url.PathEscape(s)
	}
	return strings.Join(parts, "/")
}

// Lookup returns the URL registered for key.
func (m *Manifest) Lookup(key string) (string, bool) {
	u, ok := m.urls[key]
	return u, ok
}

// File maps a served image name (as it appears after /img/) back to its path
// in the scanned filesystem.
func (m *Manifest) File(served string) (string, bool) {
	p, ok := m.files[strings.TrimPrefix(served, "/")]
	return p, ok
}

// Len reports the number of keys.
func (m *Manifest) Len() int { return len(m.urls) }

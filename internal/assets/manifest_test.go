package assets

import (
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"assets/img/a.png":              {Data: []byte("a")},
		"assets/img/shots/Screen 1.jpg": {Data: []byte("shot")},
		"assets/img/notes.txt":          {Data: []byte("not an image")},
		"other/c.png":                   {Data: []byte("c")},
	}
}

func TestBuildManifest_IndexesBothKeyShapes(t *testing.T) {
	m, err := BuildManifest(testFS(), "assets/img", "https://cdn.example/")
	require.NoError(t, err)

	rel, ok := m.Lookup("./assets/img/a.png")
	require.True(t, ok)
	abs, ok := m.Lookup("/src/assets/img/a.png")
	require.True(t, ok)
	assert.Equal(t, rel, abs)
	assert.Equal(t, "https://cdn.example/img/a.ca978112.png", rel)
}

func TestBuildManifest_SkipsNonImagesAndOtherRoots(t *testing.T) {
	m, err := BuildManifest(testFS(), "assets/img", "")
	require.NoError(t, err)

	_, ok := m.Lookup("./assets/img/notes.txt")
	assert.False(t, ok)
	_, ok = m.Lookup("./other/c.png")
	assert.False(t, ok)
	assert.Equal(t, 4, m.Len())
}

func TestBuildManifest_EscapesAndServesNestedFiles(t *testing.T) {
	m, err := BuildManifest(testFS(), "assets/img", "")
	require.NoError(t, err)

	u, ok := m.Lookup("./assets/img/shots/Screen 1.jpg")
	require.True(t, ok)
	assert.Regexp(t, `^/img/shots/Screen%201\.[0-9a-f]{8}\.jpg$`, u)

	served, err := url.PathUnescape(strings.TrimPrefix(u, "/img/"))
	require.NoError(t, err)
	p, ok := m.File(served)
	require.True(t, ok)
	assert.Equal(t, "assets/img/shots/Screen 1.jpg", p)

	_, ok = m.File("shots/Screen 1.jpg")
	assert.False(t, ok)
}

func TestNewManifest_CopiesEntries(t *testing.T) {
	entries := map[string]string{"./a.png": "/a.png"}
	m := NewManifest(entries)
	entries["./b.png"] = "/b.png"

	_, ok := m.Lookup("./b.png")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

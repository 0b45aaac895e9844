package imgfetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionForContentType(t *testing.T) {
	cases := map[string]string{
		"image/jpeg":    ".jpg",
		"image/jpg":     ".jpg",
		"image/png":     ".png",
		"image/gif":     ".gif",
		"image/webp":    ".webp",
		"image/bmp":     ".bmp",
		"image/svg+xml": ".svg",
		"image/tiff":    ".tiff",
	}
	for contentType, want := range cases {
		ext, ok := ExtensionForContentType(contentType)
		assert.True(t, ok, contentType)
		assert.Equal(t, want, ext)
	}
}

func TestExtensionForContentTypeCaseInsensitive(t *testing.T) {
	ext, ok := ExtensionForContentType("IMAGE/PNG")
	assert.True(t, ok)
	assert.Equal(t, ".png", ext)
}

func TestExtensionForContentTypeUnknown(t *testing.T) {
	ext, ok := ExtensionForContentType("text/html")
	assert.False(t, ok)
	assert.Empty(t, ext)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a_b_c_d_e_f_g_h_i_j.png", SanitizeFilename(`a<b>c:d"e/f\g|h?i*j.png`))
}

func TestSanitizeFilenameIdempotent(t *testing.T) {
	safe := "already_safe-name.jpg"
	assert.Equal(t, safe, SanitizeFilename(safe))
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	long := strings.Repeat("a", 300) + ".png"
	got := SanitizeFilename(long)
	assert.Len(t, got, MaxFilenameLen)
	assert.True(t, strings.HasSuffix(got, ".png"))
}

func TestFallbackFilenameStable(t *testing.T) {
	// FNV-1a over the URL bytes, mod 10000.
	assert.Equal(t, "ubuntu_image_7729.jpg", FallbackFilename("https://example.com/image", "image/jpeg"))
	assert.Equal(t, "ubuntu_image_7729.png", FallbackFilename("https://example.com/image", "image/png"))
}

func TestFallbackFilenameDefaultsToJpg(t *testing.T) {
	assert.Equal(t, "ubuntu_image_5978.jpg", FallbackFilename("https://example.com/photo?id=9", "application/octet-stream"))
}

func TestFilenameFromURL(t *testing.T) {
	assert.Equal(t, "cat.png", FilenameFromURL("https://example.com/cat.png", "image/png"))
}

func TestFilenameFromURLNoExtension(t *testing.T) {
	assert.Equal(t, "ubuntu_image_7729.jpg", FilenameFromURL("https://example.com/image", "image/jpeg"))
}

func TestFilenameFromURLEmptyPath(t *testing.T) {
	assert.Equal(t, "ubuntu_image_1663.png", FilenameFromURL("https://example.com/gallery/", "image/png"))
}

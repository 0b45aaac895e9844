package imgfetch

import (
	"fmt"
	"hash/fnv"
	"net/url"
	"path"
	"strings"
)

const (
	// MaxFilenameLen caps the sanitized filename length.
	MaxFilenameLen = 255
	// DefaultExtension is used when the content type has no table entry.
	DefaultExtension = ".jpg"
)

var contentTypeExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/bmp":     ".bmp",
	"image/svg+xml": ".svg",
	"image/tiff":    ".tiff",
}

// ExtensionForContentType returns the file extension for a MIME content
// type, matched case-insensitively against a fixed table. The second return
// is false when the type has no mapping.
func ExtensionForContentType(contentType string) (string, bool) {
	ext, ok := contentTypeExtensions[strings.ToLower(contentType)]
	return ext, ok
}

// SanitizeFilename replaces each character unsafe for filesystem paths with
// an underscore and truncates the base name so the total length stays within
// MaxFilenameLen, preserving the extension.
func SanitizeFilename(filename string) string {
	const unsafe = `<>:"/\|?*`

	filename = strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafe, r) {
			return '_'
		}
		return r
	}, filename)

	if len(filename) > MaxFilenameLen {
		ext := path.Ext(filename)
		if len(ext) >= MaxFilenameLen {
			ext = ""
		}
		base := filename[:len(filename)-len(ext)]
		filename = base[:MaxFilenameLen-len(ext)] + ext
	}
	return filename
}

// FallbackFilename synthesizes a name for URLs whose path carries no usable
// basename. FNV-1a keeps the number stable across runs, unlike a salted
// per-process hash.
func FallbackFilename(rawURL, contentType string) string {
	ext, ok := ExtensionForContentType(contentType)
	if !ok {
		ext = DefaultExtension
	}
	h := fnv.New32a()
	h.Write([]byte(rawURL))
	return fmt.Sprintf("ubuntu_image_%d%s", h.Sum32()%10000, ext)
}

// FilenameFromURL derives the output filename from the last segment of the
// URL path, falling back to a synthesized name when the segment is empty or
// has no extension. The result is always sanitized.
func FilenameFromURL(rawURL, contentType string) string {
	var name string
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		name = path.Base(u.Path)
		if name == "." || name == "/" {
			name = ""
		}
	}
	if name == "" || !strings.Contains(name, ".") {
		name = FallbackFilename(rawURL, contentType)
	}
	return SanitizeFilename(name)
}

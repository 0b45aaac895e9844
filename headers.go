package imgfetch

import (
	"fmt"
	"net/http"
)

// notableHeaders lists the response headers worth surfacing, in report order.
var notableHeaders = []struct {
	key   string
	label string
}{
	{"Content-Length", "File size"},
	{"Content-Type", "Content type"},
	{"Last-Modified", "Last modified"},
	{"Server", "Server info"},
	{"Content-Encoding", "Encoding"},
	{"Cache-Control", "Cache policy"},
}

// HeaderReport formats the notable response headers, omitting absent ones.
func HeaderReport(header http.Header) []string {
	var lines []string
	for _, h := range notableHeaders {
		if value := header.Get(h.key); value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", h.label, value))
		}
	}
	return lines
}

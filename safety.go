package imgfetch

import (
	"fmt"
	"net/url"
	"strings"
)

// advisorySizeLimit is deliberately higher than the interactive prompt
// threshold; crossing it earns a warning line, not a question.
const advisorySizeLimit = 100 * 1024 * 1024

var suspiciousDomains = []string{"suspicious.com", "malware.net"}

// SafetyWarnings inspects the response metadata before any prompt or byte
// hits disk and returns human-readable advisories, one per finding. An
// empty slice means nothing looked off.
func SafetyWarnings(rawURL, contentType string, size int64) []string {
	var warnings []string

	if size > advisorySizeLimit {
		warnings = append(warnings, fmt.Sprintf("Large file: %.1fMB", float64(size)/(1024*1024)))
	}

	if !strings.HasPrefix(contentType, "image/") {
		warnings = append(warnings, fmt.Sprintf("Unexpected content type: %s", contentType))
	}

	if u, err := url.Parse(rawURL); err == nil {
		host := strings.ToLower(u.Hostname())
		for _, sus := range suspiciousDomains {
			if strings.Contains(host, sus) {
				warnings = append(warnings, fmt.Sprintf("Potentially suspicious domain: %s", host))
				break
			}
		}
	}

	return warnings
}

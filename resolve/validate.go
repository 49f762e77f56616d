package resolve

import (
	"regexp"
)

// accepts bare domains without scheme and the short-link subdomains
var tiktokUrlPattern = regexp.MustCompile(`(https?://)?(www\.)?(vm\.|vt\.)?tiktok\.com/(.*)`)

// IsValidTikTokUrl reports whether the candidate looks like a tiktok link.
// No network access.
func IsValidTikTokUrl(candidate string) bool {
	return tiktokUrlPattern.MatchString(candidate)
}

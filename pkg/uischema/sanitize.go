package uischema

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	copyPolicyOnce sync.Once
	copyPolicy     *bluemonday.Policy
)

// SanitizeHTML strips anything but basic formatting markup from overlay copy.
func SanitizeHTML(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(copySanitizer().Sanitize(trimmed))
}

func copySanitizer() *bluemonday.Policy {
	copyPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("p", "br", "em", "strong", "b", "i", "ul", "ol", "li", "span", "small", "code")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(true)
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("p", "span")
		copyPolicy = policy
	})
	return copyPolicy
}

// Package sanitizer wraps bluemonday policies for user-supplied text.
//
// Contact submissions are embedded into outbound email bodies; StripHTML
// runs over every user-supplied field first so markup in a message cannot
// inject into the rendered email.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Strict policy strips ALL HTML and returns plain text.
		strictPolicy = bluemonday.StrictPolicy()

		// Safe policy allows basic formatting for user-generated content.
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// StripHTML removes all HTML, returning plain text. Use for any
// user-supplied value that ends up inside a rendered document.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTML allows safe formatting tags (p, a, strong, em, lists, code)
// and strips everything dangerous: scripts, event handlers, javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

package render

import (
	"regexp"
	"strings"
)

var nonAnchorRunRE = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Anchor derives a heading's id from its text: lowercase, with every maximal
// run of characters outside [A-Za-z0-9_] collapsed into a single hyphen.
// Text ending in punctuation yields a trailing hyphen ("Hello World!" ->
// "hello-world-"); published links already point at these ids, so the shape
// must stay exactly as is.
func Anchor(text string) string {
	return nonAnchorRunRE.ReplaceAllString(strings.ToLower(text), "-")
}

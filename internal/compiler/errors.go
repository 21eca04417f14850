package compiler

import "errors"

// Any of these aborts the whole run; the build never recovers per-document.
var (
	// ErrFrontmatterParse marks a missing or unparsable metadata header.
	ErrFrontmatterParse = errors.New("frontmatter parse error")
	// ErrMarkdownRender marks a body the rendering pipeline could not convert.
	ErrMarkdownRender = errors.New("markdown render error")
)

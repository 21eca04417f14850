package model

import (
	"html/template"
	"time"
)

// Post is one compiled source document. It is immutable once the compiler
// has finished a run; the rendering, ranking and indexing phases only read it.
type Post struct {
	Slug        string
	Title       string
	Description string
	Author      string
	Date        time.Time
	Tags        []string
	HeroImage   string

	// BodyMarkdown is the raw document text after the frontmatter header has
	// been removed.
	BodyMarkdown string

	RenderedHTML       template.HTML
	TableOfContents    []HeadingEntry
	ReadingTimeMinutes int

	// Related holds at most 3 other posts sharing at least one tag, ordered
	// by descending shared-tag count. Populated after the whole corpus has
	// been compiled.
	Related []*Post
}

// HeadingEntry is one table-of-contents row. Only headings of level 1-3 are
// captured; Anchor matches the id attribute emitted on the rendered heading.
type HeadingEntry struct {
	Anchor string
	Text   string
	Level  int
}

// SearchRecord is the compact per-post entry written to search.json.
// Content is the rendered HTML stripped of markup and cut at 300 characters.
type SearchRecord struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Content     string   `json:"content"`
}

// SiteData holds all site-wide data, including configuration and content.
type SiteData struct {
	Config map[string]interface{}
	Posts  []*Post
}

package model

// PageData is the context handed to a layout template when assembling a page.
// Post is nil for site-level pages (home, post listing).
type PageData struct {
	Site *SiteData
	Post *Post
}

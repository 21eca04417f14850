package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/fivenightsatbothra-commits/MD-Blog/internal/model"
)

// ErrSearchIndexWrite marks a search index that could not be persisted.
var ErrSearchIndexWrite = errors.New("search index write error")

// snippetLength is the raw character cut applied after markup stripping.
const snippetLength = 300

var markupTagRE = regexp.MustCompile(`<[^>]*>`)

// Snippet strips every <...> span from the rendered HTML and truncates the
// remainder to snippetLength characters. The cut is a plain character count;
// it may land mid-word, and the search UI depends on that exact shape.
func Snippet(renderedHTML string) string {
	plain := markupTagRE.ReplaceAllString(renderedHTML, "")
	runes := []rune(plain)
	if len(runes) > snippetLength {
		runes = runes[:snippetLength]
	}
	return string(runes)
}

// BuildIndex derives one SearchRecord per post, in corpus order.
func BuildIndex(posts []*model.Post) []model.SearchRecord {
	records := make([]model.SearchRecord, 0, len(posts))
	for _, post := range posts {
		records = append(records, model.SearchRecord{
			Title:       post.Title,
			Slug:        post.Slug,
			Description: post.Description,
			Tags:        post.Tags,
			Content:     Snippet(string(post.RenderedHTML)),
		})
	}
	return records
}

// WriteIndex writes the corpus search index as a JSON array to path.
func WriteIndex(path string, posts []*model.Post) error {
	data, err := json.Marshal(BuildIndex(posts))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSearchIndexWrite, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSearchIndexWrite, path, err)
	}
	return nil
}

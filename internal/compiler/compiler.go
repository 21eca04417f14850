package compiler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fivenightsatbothra-commits/MD-Blog/internal/model"
	"github.com/fivenightsatbothra-commits/MD-Blog/internal/related"
	"github.com/fivenightsatbothra-commits/MD-Blog/internal/render"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Metadata is the recognized frontmatter header of an article.
type Metadata struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	HeroImage   string   `yaml:"heroImage"`
	Tags        []string `yaml:"tags"`
}

const defaultWordsPerMinute = 200

var dateFormats = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CompileDir compiles every .md file under dir into a Post, sorts the corpus
// by date descending and fills in each post's related list. The date sort is
// a barrier: ranking (and later indexing) see the fully compiled corpus, and
// ranking ties resolve toward more recent posts because of it.
func CompileDir(dir string, wordsPerMinute int) ([]*model.Post, error) {
	rend := render.New()

	var posts []*model.Post
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		post, err := LoadPost(rend, path, wordsPerMinute)
		if err != nil {
			return err
		}
		slog.Debug("compiled article", "slug", post.Slug, "readingTime", post.ReadingTimeMinutes)
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	for _, post := range posts {
		post.Related = related.Rank(post, posts)
	}

	return posts, nil
}

// LoadPost compiles a single source document: frontmatter extraction,
// markdown rendering and reading time. The metadata header is required; a
// missing or malformed header is fatal for the run.
func LoadPost(rend *render.Renderer, path string, wordsPerMinute int) (*model.Post, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	var meta Metadata
	body, err := frontmatter.MustParse(bytes.NewReader(fileBytes), &meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFrontmatterParse, path, err)
	}

	date, err := parseDate(meta.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFrontmatterParse, path, err)
	}

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	title := meta.Title
	if title == "" {
		title = titleFromSlug(slug)
	}

	html, toc, err := rend.Render(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMarkdownRender, path, err)
	}

	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.Post{
		Slug:               slug,
		Title:              title,
		Description:        meta.Description,
		Author:             meta.Author,
		Date:               date,
		Tags:               tags,
		HeroImage:          meta.HeroImage,
		BodyMarkdown:       string(body),
		RenderedHTML:       template.HTML(html),
		TableOfContents:    toc,
		ReadingTimeMinutes: ReadingTime(string(body), wordsPerMinute),
	}, nil
}

// ReadingTime estimates minutes to read: word count over the rate, rounded
// up, never below 1.
func ReadingTime(body string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = defaultWordsPerMinute
	}
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func parseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("missing date field")
	}
	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, dateStr); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse date '%s' with any supported format (use YYYY-MM-DD or RFC3339)", dateStr)
}

func titleFromSlug(slug string) string {
	tempTitle := strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " ")
	return cases.Title(language.English).String(tempTitle)
}

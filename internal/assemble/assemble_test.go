package assemble

import (
	"html/template"
	"os"
	"path/filepath"
	"testing"

	"github.com/fivenightsatbothra-commits/MD-Blog/internal/model"

	"github.com/stretchr/testify/require"
)

func writeLayout(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newLayouts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeLayout(t, dir, "base.html", `<html><body>{{if .Post}}{{.Post.RenderedHTML}}{{end}}</body></html>`)
	writeLayout(t, dir, "home.html", `<html><body>{{len .Site.Posts}} posts</body></html>`)
	writeLayout(t, dir, "post.html", `<article>{{.Post.Title}}|{{.Post.RenderedHTML}}|{{range .Post.TableOfContents}}{{.Anchor}};{{end}}</article>`)
	return dir
}

func TestLoadLayouts_MissingBase_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, "home.html", `<html></html>`)

	_, err := LoadLayouts(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "base.html")
}

func TestWriteSite_GeneratesPostAndHomePages(t *testing.T) {
	layouts := newLayouts(t)
	templates, err := LoadLayouts(layouts)
	require.NoError(t, err)

	outputDir := t.TempDir()
	site := &model.SiteData{
		Posts: []*model.Post{
			{
				Slug:            "hello",
				Title:           "Hello",
				RenderedHTML:    template.HTML("<p>hi</p>"),
				TableOfContents: []model.HeadingEntry{{Anchor: "intro", Text: "Intro", Level: 2}},
			},
		},
	}

	require.NoError(t, WriteSite(outputDir, templates, site))

	postPage, err := os.ReadFile(filepath.Join(outputDir, "posts", "hello", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(postPage), "Hello|<p>hi</p>|intro;")

	homePage, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(homePage), "1 posts")
}

func TestWriteSite_MissingHomeLayout_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, "base.html", `<html></html>`)
	templates, err := LoadLayouts(dir)
	require.NoError(t, err)

	err = WriteSite(t.TempDir(), templates, &model.SiteData{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "home.html")
}

func TestCopyDirContents_CopiesNestedFiles(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "css", "site.css"), []byte("body{}"), 0o644))

	dst := t.TempDir()
	require.NoError(t, CopyDirContents(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "css", "site.css"))
	require.NoError(t, err)
	require.Equal(t, "body{}", string(data))
}

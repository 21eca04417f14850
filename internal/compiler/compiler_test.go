package compiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fivenightsatbothra-commits/MD-Blog/internal/render"

	"github.com/stretchr/testify/require"
)

func writeArticle(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadingTime_Exactly200Words_OneMinute(t *testing.T) {
	body := strings.TrimSpace(strings.Repeat("word ", 200))
	require.Equal(t, 1, ReadingTime(body, 200))
}

func TestReadingTime_401Words_RoundsUpToThree(t *testing.T) {
	body := strings.TrimSpace(strings.Repeat("word ", 401))
	require.Equal(t, 3, ReadingTime(body, 200))
}

func TestReadingTime_EmptyBody_MinimumOne(t *testing.T) {
	require.Equal(t, 1, ReadingTime("", 200))
}

func TestLoadPost_ParsesMetadataAndRenders(t *testing.T) {
	dir := t.TempDir()
	path := writeArticle(t, dir, "my-first-post.md", `---
title: First Post
date: 2024-05-10
description: An introduction
author: Jo
heroImage: /images/hero.png
tags:
  - go
  - blogging
---
# Welcome

Some body text.
`)

	post, err := LoadPost(render.New(), path, 200)
	require.NoError(t, err)
	require.Equal(t, "my-first-post", post.Slug)
	require.Equal(t, "First Post", post.Title)
	require.Equal(t, "An introduction", post.Description)
	require.Equal(t, "Jo", post.Author)
	require.Equal(t, "/images/hero.png", post.HeroImage)
	require.Equal(t, []string{"go", "blogging"}, post.Tags)
	require.Equal(t, 2024, post.Date.Year())
	require.Contains(t, string(post.RenderedHTML), `<h1 id="welcome">`)
	require.Len(t, post.TableOfContents, 1)
	require.Equal(t, 1, post.ReadingTimeMinutes)
}

func TestLoadPost_MissingFrontmatter_ReturnsParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeArticle(t, dir, "plain.md", "# Just markdown\n\nNo header here.\n")

	_, err := LoadPost(render.New(), path, 200)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFrontmatterParse)
}

func TestLoadPost_UnparsableDate_ReturnsParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeArticle(t, dir, "bad-date.md", `---
title: Bad Date
date: sometime last summer
---
body
`)

	_, err := LoadPost(render.New(), path, 200)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFrontmatterParse)
}

func TestLoadPost_MissingTags_DefaultsToEmptySet(t *testing.T) {
	dir := t.TempDir()
	path := writeArticle(t, dir, "untagged.md", `---
title: Untagged
date: 2024-05-10
---
body
`)

	post, err := LoadPost(render.New(), path, 200)
	require.NoError(t, err)
	require.NotNil(t, post.Tags)
	require.Empty(t, post.Tags)
}

func TestLoadPost_EmptyTitle_DerivedFromSlug(t *testing.T) {
	dir := t.TempDir()
	path := writeArticle(t, dir, "some-untitled_note.md", `---
date: 2024-05-10
---
body
`)

	post, err := LoadPost(render.New(), path, 200)
	require.NoError(t, err)
	require.Equal(t, "Some Untitled Note", post.Title)
}

func TestCompileDir_SortsByDateDescendingAndRanks(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "a.md", `---
title: A
date: 2024-03-03
tags: [x, y]
---
body a
`)
	writeArticle(t, dir, "b.md", `---
title: B
date: 2024-02-02
tags: [y, z]
---
body b
`)
	writeArticle(t, dir, "c.md", `---
title: C
date: 2024-01-01
tags: [z]
---
body c
`)

	posts, err := CompileDir(dir, 200)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	require.Equal(t, "a", posts[0].Slug)
	require.Equal(t, "b", posts[1].Slug)
	require.Equal(t, "c", posts[2].Slug)

	// a shares a tag only with b; b ties between a and c and keeps corpus order.
	require.Len(t, posts[0].Related, 1)
	require.Equal(t, "b", posts[0].Related[0].Slug)
	require.Len(t, posts[1].Related, 2)
	require.Equal(t, "a", posts[1].Related[0].Slug)
	require.Equal(t, "c", posts[1].Related[1].Slug)
}

func TestCompileDir_FrontmatterFailureInOneFile_AbortsRun(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "good.md", `---
title: Good
date: 2024-01-01
---
fine
`)
	writeArticle(t, dir, "broken.md", "no header at all\n")

	_, err := CompileDir(dir, 200)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrFrontmatterParse)
}

package assemble

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivenightsatbothra-commits/MD-Blog/internal/model"
)

const (
	baseLayout     = "base.html"
	postLayout     = "post.html"
	homeLayout     = "home.html"
	postListLayout = "list-posts.html"
)

// LoadLayouts parses the .html layout files under layoutsDir. base.html must
// exist directly in layoutsDir and is parsed first together with everything
// under partials/, then the remaining page layouts are added on top.
func LoadLayouts(layoutsDir string) (*template.Template, error) {
	var layoutFiles []string
	err := filepath.WalkDir(layoutsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			layoutFiles = append(layoutFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files in '%s': %w", layoutsDir, err)
	}

	var basePath string
	var pageFiles []string
	var partialFiles []string
	for _, f := range layoutFiles {
		switch {
		case filepath.Base(f) == baseLayout && filepath.Dir(f) == layoutsDir:
			basePath = f
		case strings.HasPrefix(filepath.Dir(f), filepath.Join(layoutsDir, "partials")):
			partialFiles = append(partialFiles, f)
		default:
			pageFiles = append(pageFiles, f)
		}
	}
	if basePath == "" {
		return nil, fmt.Errorf("%s not found directly in layouts directory '%s'", baseLayout, layoutsDir)
	}

	templates, err := template.ParseFiles(append([]string{basePath}, partialFiles...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s and partials: %w", baseLayout, err)
	}
	if len(pageFiles) > 0 {
		templates, err = templates.ParseFiles(pageFiles...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page layout files: %w", err)
		}
	}
	return templates, nil
}

// WriteSite assembles every page: one page per post under posts/<slug>/, the
// home page and, when a layout for it exists, the post listing page. Each
// template receives the compiled post (rendered fragment, table of contents,
// reading time, related posts) and the site-wide data.
func WriteSite(outputDir string, templates *template.Template, site *model.SiteData) error {
	for _, post := range site.Posts {
		layout := postLayout
		if templates.Lookup(layout) == nil {
			layout = baseLayout
		}
		outputPath := filepath.Join(outputDir, "posts", post.Slug, "index.html")
		if err := writePage(templates, layout, outputPath, model.PageData{Site: site, Post: post}); err != nil {
			return err
		}
		slog.Debug("generated page", "path", outputPath, "layout", layout)
	}

	if templates.Lookup(homeLayout) == nil {
		return fmt.Errorf("homepage layout '%s' not found. Please create it in the layouts directory", homeLayout)
	}
	if err := writePage(templates, homeLayout, filepath.Join(outputDir, "index.html"), model.PageData{Site: site}); err != nil {
		return err
	}

	if templates.Lookup(postListLayout) == nil {
		slog.Info("post list layout not found, skipping listing page", "layout", postListLayout)
		return nil
	}
	return writePage(templates, postListLayout, filepath.Join(outputDir, "posts", "index.html"), model.PageData{Site: site})
}

func writePage(templates *template.Template, layout, outputPath string, data model.PageData) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", outputPath, err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", outputPath, err)
	}
	defer outFile.Close()

	if err := templates.ExecuteTemplate(outFile, layout, data); err != nil {
		return fmt.Errorf("failed to execute template '%s' for '%s': %w", layout, outputPath, err)
	}
	return nil
}

// CopyDirContents recursively copies contents from src to dst.
func CopyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(path, dstPath); err != nil {
			return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
		}
		return nil
	})
}

func copyFile(srcFile, dstFile string) error {
	data, err := os.ReadFile(srcFile)
	if err != nil {
		return fmt.Errorf("failed to read source file %s: %w", srcFile, err)
	}
	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", dstFile, err)
	}
	if err := os.WriteFile(dstFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write destination file %s: %w", dstFile, err)
	}
	return nil
}

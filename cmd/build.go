package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fivenightsatbothra-commits/MD-Blog/internal/assemble"
	"github.com/fivenightsatbothra-commits/MD-Blog/internal/compiler"
	"github.com/fivenightsatbothra-commits/MD-Blog/internal/config"
	"github.com/fivenightsatbothra-commits/MD-Blog/internal/model"
	"github.com/fivenightsatbothra-commits/MD-Blog/internal/search"

	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compiles articles and generates the static site",
	Long: `The build command compiles every Markdown article from the content
directory (frontmatter, rendered HTML, table of contents, reading time,
related posts), applies layouts, writes the pages into the configured output
directory and emits search.json for client-side full-text lookup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(appConfig, siteData)
	},
}

// runBuildProcess is the whole batch: compile the corpus, then hand the
// compiled posts to the page assembler and the search index writer. Any
// failure aborts the run; partial output is not trusted by callers.
func runBuildProcess(cfg config.Config, site *model.SiteData) error {
	slog.Info("starting build",
		"contentDir", cfg.ContentDir,
		"outputDir", cfg.OutputDir,
		"siteTitle", cfg.SiteTitle)

	if _, err := os.Stat(cfg.ContentDir); os.IsNotExist(err) {
		return fmt.Errorf("content directory '%s' not found. Please create it and add your Markdown articles", cfg.ContentDir)
	}
	if _, err := os.Stat(cfg.LayoutsDir); os.IsNotExist(err) {
		return fmt.Errorf("layouts directory '%s' not found. Please create it and add your .html layout files", cfg.LayoutsDir)
	}

	// Phase 1+2+3: per-document compilation, then the corpus-wide barrier
	// (date sort, related ranking) inside CompileDir.
	posts, err := compiler.CompileDir(cfg.ContentDir, cfg.WordsPerMinute)
	if err != nil {
		return err
	}
	site.Posts = posts
	slog.Info("compiled articles", "count", len(posts))

	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", cfg.OutputDir, err)
	}

	if _, err := os.Stat(cfg.StaticDir); !os.IsNotExist(err) {
		if err := assemble.CopyDirContents(cfg.StaticDir, cfg.OutputDir); err != nil {
			return fmt.Errorf("failed to copy static assets: %w", err)
		}
		slog.Info("copied static assets", "from", cfg.StaticDir)
	} else {
		slog.Info("static assets directory not found, skipping copy", "dir", cfg.StaticDir)
	}

	templates, err := assemble.LoadLayouts(cfg.LayoutsDir)
	if err != nil {
		return err
	}

	if err := assemble.WriteSite(cfg.OutputDir, templates, site); err != nil {
		return err
	}

	searchPath := filepath.Join(cfg.OutputDir, "search.json")
	if err := search.WriteIndex(searchPath, posts); err != nil {
		return err
	}
	slog.Info("wrote search index", "path", searchPath, "records", len(posts))

	slog.Info("build completed successfully")
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fivenightsatbothra-commits/MD-Blog/cmd"
	"github.com/fivenightsatbothra-commits/MD-Blog/internal/model"
	"gopkg.in/yaml.v2"
)

var site model.SiteData

// loadSiteConfig reads site-wide metadata (title, description, author, ...)
// from the YAML config file. A missing file is fine; the build falls back to
// configured defaults.
func loadSiteConfig(filename string) error {
	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			site.Config = map[string]interface{}{}
			return nil
		}
		return fmt.Errorf("error reading config file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(yamlFile, &site.Config); err != nil {
		return fmt.Errorf("error unmarshalling config file %s: %w", filename, err)
	}
	return nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := loadSiteConfig("config.yaml"); err != nil {
		slog.Error("failed to load site configuration", "error", err)
		os.Exit(1)
	}
	cmd.Execute(&site)
}

package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var serverPort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and rebuilds on changes",
	Long: `The serve command performs an initial build, starts a local web server
for the output directory, and watches the content, layouts and static
directories, rebuilding the site whenever something changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runBuildProcess(appConfig, siteData); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		go func() {
			// Debounce: wait a short period after the last event before rebuilding.
			var buildTimer *time.Timer
			debounceDuration := 500 * time.Millisecond

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
						slog.Info("change detected", "path", event.Name, "op", event.Op.String())

						// New subdirectories are not watched automatically.
						if event.Has(fsnotify.Create) && isDir(event.Name) {
							if err := watcher.Add(event.Name); err != nil {
								slog.Error("failed to watch new directory", "path", event.Name, "error", err)
							}
						}

						if buildTimer != nil {
							buildTimer.Stop()
						}
						buildTimer = time.AfterFunc(debounceDuration, func() {
							slog.Info("rebuilding site")
							if err := runBuildProcess(appConfig, siteData); err != nil {
								slog.Error("rebuild failed", "error", err)
							} else {
								slog.Info("site rebuilt")
							}
						})
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					slog.Error("watcher error", "error", err)
				}
			}
		}()

		pathsToWatch := []string{
			appConfig.ContentDir,
			appConfig.LayoutsDir,
			appConfig.StaticDir,
		}

		for _, rootPath := range pathsToWatch {
			if _, statErr := os.Stat(rootPath); os.IsNotExist(statErr) {
				slog.Info("directory not found, not watching", "dir", rootPath)
				continue
			}

			err = filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					slog.Error("error walking watch path", "path", path, "error", err)
					return nil
				}
				if d.IsDir() {
					if watchErr := watcher.Add(path); watchErr != nil {
						slog.Error("failed to watch directory", "path", path, "error", watchErr)
					}
				}
				return nil
			})
			if err != nil {
				slog.Error("error setting up watch", "dir", rootPath, "error", err)
			}
		}

		serverAddr := fmt.Sprintf(":%d", serverPort)
		slog.Info("serving site", "dir", appConfig.OutputDir, "addr", "http://localhost"+serverAddr)

		fs := http.FileServer(http.Dir(appConfig.OutputDir))
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
				_, err := os.Stat(filepath.Join(appConfig.OutputDir, r.URL.Path, "index.html"))
				if os.IsNotExist(err) {
					http.NotFound(w, r)
					return
				}
			}
			// No caching during development.
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			fs.ServeHTTP(w, r)
		})

		return http.ListenAndServe(serverAddr, nil)
	},
}

func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}

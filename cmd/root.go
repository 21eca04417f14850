package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivenightsatbothra-commits/MD-Blog/internal/config"
	"github.com/fivenightsatbothra-commits/MD-Blog/internal/model"

	"github.com/spf13/viper"
)

var cfgFile string
var appConfig config.Config
var siteData *model.SiteData

var rootCmd = &cobra.Command{
	Use:   "mdblog",
	Short: "mdblog - a markdown blog compiler",
	Long: `mdblog takes a directory of Markdown articles with metadata headers,
compiles them into HTML fragments with tables of contents, reading times,
related-post rankings and a full-text search index, and assembles a static
site from your layouts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute(site *model.SiteData) {
	siteData = site
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	v.SetDefault("outputDir", "dist")
	v.SetDefault("baseURL", "")
	v.SetDefault("siteTitle", "My Markdown Blog")
	v.SetDefault("contentDir", "content")
	v.SetDefault("layoutsDir", "layouts")
	v.SetDefault("staticDir", "static")
	v.SetDefault("wordsPerMinute", 200)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MDBLOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found in current directory: %w", cfgFile, err)
			}
			// No config file is fine; defaults and environment variables apply.
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}

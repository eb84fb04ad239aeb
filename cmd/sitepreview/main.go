// Command sitepreview serves a pre-built static site from a local
// directory, emulating enough Jekyll (front matter, layouts, variable
// substitution) to preview exported pages without the real toolchain.
//
// Running it with no arguments serves the current directory on port
// 8000 and opens a browser.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DelanoJo/sitepreview"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sitepreview [dir]",
	Short: "Preview a pre-built static site locally",
	Long: `sitepreview serves a static site directory over HTTP, faking the
Jekyll features exported pages rely on: front-matter extraction, layout
wrapping, and template variable substitution. Anything it cannot
process is served as-is.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadToolConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			v.Set("dir", args[0])
		}

		port := v.GetInt("port")
		cfg := sitepreview.Config{
			Root:        v.GetString("dir"),
			Addr:        fmt.Sprintf(":%d", port),
			URL:         fmt.Sprintf("http://localhost:%d", port),
			OpenBrowser: !v.GetBool("no-browser"),
			Watch:       v.GetBool("watch"),
		}

		app := sitepreview.New(cfg)
		defer app.Close()
		return app.Start()
	},
}

// loadToolConfig layers defaults, an optional .sitepreview.yaml,
// SITEPREVIEW_* environment variables, and flags (highest precedence).
func loadToolConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("port", 8000)
	v.SetDefault("dir", ".")
	v.SetDefault("no-browser", false)
	v.SetDefault("watch", true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".sitepreview")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("SITEPREVIEW")
	v.AutomaticEnv()

	// A missing default config file is fine; an explicit --config that
	// cannot be read is not.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.sitepreview.yaml)")
	rootCmd.Flags().IntP("port", "p", 8000, "port to serve on")
	rootCmd.Flags().StringP("dir", "d", ".", "site root directory")
	rootCmd.Flags().Bool("no-browser", false, "do not open a browser on startup")
	rootCmd.Flags().Bool("watch", true, "watch the site directory and refresh the page cache on changes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

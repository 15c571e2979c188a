package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bilgisen/nexus/internal/config"
	"github.com/bilgisen/nexus/internal/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Nexus agency site server",
	Long: `Nexus serves the agency website: blog posts and testimonials, the contact
form intake and the AI growth roadmap, plus the single-page app build.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.FromEnv()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		output := "stdout"
		if cfg.LogFile != "" {
			output = cfg.LogFile
		}
		if err := logger.Init(logger.Config{
			Level:  cfg.LogLevel,
			Output: output,
			Pretty: cfg.LogPretty,
		}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, roadmapCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

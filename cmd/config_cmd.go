package cmd

import (
	"fmt"
	"strings"

	"github.com/byanarant-ctrl/tgmoney/internal/config"
	"github.com/byanarant-ctrl/tgmoney/internal/logging"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// maskCredential keeps only a short prefix of the session token visible.
func maskCredential(s string) string {
	if len(s) <= 12 {
		return strings.Repeat("*", len(s))
	}
	return s[:12] + "..."
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [API]")
	fmt.Printf("    Service URL: %s\n", config.GetBaseURL(cfg))
	fmt.Println()

	fmt.Println("  [Session]")
	if credential := config.GetInitData(cfg); credential != "" {
		fmt.Printf("    Credential: %s\n", maskCredential(credential))
	} else {
		fmt.Println("    Credential: not configured")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Stats]")
	fmt.Printf("    Default period: %s\n", cfg.Stats.DefaultPeriod)
	fmt.Println()

	fmt.Printf("  Debug log (when TGMONEY_DEBUG is set): %s\n", logging.LogPath())
	return nil
}

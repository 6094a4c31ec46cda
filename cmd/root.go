// Package cmd implements the tgmoney CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/byanarant-ctrl/tgmoney/internal/api"
	"github.com/byanarant-ctrl/tgmoney/internal/config"
	"github.com/byanarant-ctrl/tgmoney/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagBaseURL string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "tgmoney",
	Short: "Terminal client for the tgmoney budget service",
	Long:  "Track income, expenses, savings plans, and a shared family budget from the terminal.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Override the service URL")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// newClient builds the API client from config, env overrides, and flags.
// The returned credential may be empty; commands decide how to fail.
func newClient() (*api.Client, string, config.Config) {
	cfg, _ := config.Load()

	base := config.GetBaseURL(cfg)
	if flagBaseURL != "" {
		base = flagBaseURL
	}
	credential := config.GetInitData(cfg)

	return api.New(base, credential, logging.New()), credential, cfg
}

// printCredentialHelp explains how to supply the session credential.
func printCredentialHelp() {
	fmt.Println()
	fmt.Println("  No session credential configured.")
	fmt.Println()
	fmt.Println("  The credential is the signed initData string issued when the")
	fmt.Println("  mini app is opened inside the messenger.")
	fmt.Println()
	fmt.Println("  Then configure it:")
	fmt.Printf("    init_data = \"...\" in %s        (persistent)\n", config.ConfigPath())
	fmt.Println("    TGMONEY_INIT_DATA=... tgmoney status    (one-shot)")
	fmt.Println()
}

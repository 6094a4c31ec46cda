package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/cli"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show balance, budget mode, and membership",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	client, credential, _ := newClient()
	if credential == "" {
		printCredentialHelp()
		return nil
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Fetching session...\n")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	boot, err := client.Init(ctx)
	if err != nil {
		return fmt.Errorf("session bootstrap failed: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("TGMONEY STATUS"))
	fmt.Println()

	role := "member"
	if boot.IsOwner {
		role = "owner"
	}
	rows := [][]string{
		{"Balance", cli.FormatMoney(boot.Balance)},
		{"Active budget", string(boot.Mode)},
		{"Role", role},
		{"Shared budget", strconv.FormatBool(boot.HasShared)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Session",
		Headers: []string{"Field", "Value"},
		Rows:    rows,
	}))

	// Membership only matters once a shared budget exists.
	if boot.HasShared {
		members, err := client.ListMembers(ctx)
		if err != nil {
			return fmt.Errorf("listing members: %w", err)
		}

		var memberRows [][]string
		for _, m := range members.Users {
			name := m.DisplayName
			if m.TelegramID == boot.TelegramID {
				name += " (you)"
			}
			memberRows = append(memberRows, []string{name, strconv.FormatInt(m.TelegramID, 10)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Members",
			Headers: []string{"Name", "ID"},
			Rows:    memberRows,
		}))
	}

	if boot.Mode == budget.Shared {
		fmt.Println("  Entries you add go to the shared budget.")
	}
	fmt.Println()

	return nil
}

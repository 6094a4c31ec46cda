package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/byanarant-ctrl/tgmoney/internal/budget"
	"github.com/byanarant-ctrl/tgmoney/internal/cli"
	"github.com/byanarant-ctrl/tgmoney/internal/stats"

	"github.com/spf13/cobra"
)

var (
	flagStatsType   string
	flagStatsPeriod string
	flagStatsFrom   string
	flagStatsTo     string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals and the per-category breakdown for a period",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&flagStatsType, "type", "t", "expense", "Transaction type: income or expense")
	statsCmd.Flags().StringVarP(&flagStatsPeriod, "period", "p", "", "Named period: week, month, or year")
	statsCmd.Flags().StringVar(&flagStatsFrom, "from", "", "Range start (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&flagStatsTo, "to", "", "Range end (YYYY-MM-DD)")
	rootCmd.AddCommand(statsCmd)
}

// statsWindow resolves the flags into an absolute window: an explicit
// range when both dates are given, otherwise the named period.
func statsWindow(cfgDefault string) (time.Time, time.Time, error) {
	if flagStatsFrom != "" || flagStatsTo != "" {
		if flagStatsFrom == "" || flagStatsTo == "" {
			return time.Time{}, time.Time{}, fmt.Errorf("--from and --to must be given together")
		}
		return stats.RangeWindow(flagStatsFrom, flagStatsTo)
	}

	period := flagStatsPeriod
	if period == "" {
		period = cfgDefault
	}
	return stats.PeriodWindow(period, time.Now())
}

func runStats(_ *cobra.Command, _ []string) error {
	client, credential, cfg := newClient()
	if credential == "" {
		printCredentialHelp()
		return nil
	}

	typ := budget.TxType(strings.ToLower(flagStatsType))
	if !typ.Valid() {
		return fmt.Errorf("unknown type %q (want income or expense)", flagStatsType)
	}

	start, end, err := statsWindow(cfg.Stats.DefaultPeriod)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Fetching report...\n")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := stats.Fetch(ctx, client, typ, start, end)
	if err != nil {
		return fmt.Errorf("fetching report: %w", err)
	}

	label := "EXPENSES"
	if typ == budget.Income {
		label = "INCOME"
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(label + " · " + report.Start.Format("2006-01-02") + " — " + report.End.Format("2006-01-02")))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Summary",
		Headers: []string{"Total", "Entries"},
		Rows: [][]string{{
			cli.FormatMoney(report.Summary.Total),
			cli.FormatNumber(int64(report.Summary.Count)),
		}},
	}))

	if len(report.Breakdown) > 0 && report.Summary.Total > 0 {
		var rows [][]string
		for _, ct := range report.Breakdown {
			share := ct.Total / report.Summary.Total
			rows = append(rows, []string{
				ct.Category,
				cli.FormatMoney(ct.Total),
				cli.RenderShareBar(share, 20),
				cli.FormatPercent(share),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By Category",
			Headers: []string{"Category", "Total", "Share", "%"},
			Rows:    rows,
		}))
	}
	fmt.Println()

	return nil
}

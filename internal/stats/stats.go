package stats

import (
	"context"
	"time"

	"github.com/byanarant-ctrl/tgmoney/internal/api"
	"github.com/byanarant-ctrl/tgmoney/internal/budget"

	"golang.org/x/sync/errgroup"
)

// Report is the rendered-ready aggregate for one type and window.
type Report struct {
	Type      budget.TxType
	Start     time.Time
	End       time.Time
	Summary   api.Summary
	Breakdown []budget.CategoryTotal
}

// Fetch issues the two independent reads for a window — the scalar
// summary and the per-category breakdown — concurrently. Both must
// succeed; the first error wins.
func Fetch(ctx context.Context, client *api.Client, typ budget.TxType, start, end time.Time) (*Report, error) {
	report := &Report{Type: typ, Start: start, End: end}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sum, err := client.SummaryRange(ctx, typ, start, end)
		if err != nil {
			return err
		}
		report.Summary = *sum
		return nil
	})
	g.Go(func() error {
		items, err := client.CategorySummary(ctx, typ, start, end)
		if err != nil {
			return err
		}
		report.Breakdown = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

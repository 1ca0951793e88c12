package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStats(ctx context.Context, args []string) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	start, end := rangeArgs(args)

	stats, err := c.apiClient.Stats(ctx, start, end)
	if err != nil {
		return err
	}

	fmt.Println("=== Trading Statistics ===")
	fmt.Println()
	fmt.Printf("Total trades:  %d\n", stats.TotalTrades)
	fmt.Printf("Wins / losses: %d / %d\n", stats.Wins, stats.Losses)
	fmt.Printf("Win rate:      %d%%\n", stats.WinRate)
	fmt.Printf("Total P&L:     %s\n", stats.TotalPnL.StringFixed(2))

	if stats.ProfitFactorInfinite {
		fmt.Println("Profit factor: ∞")
	} else if stats.ProfitFactor != nil {
		fmt.Printf("Profit factor: %s\n", stats.ProfitFactor.StringFixed(2))
	}

	fmt.Printf("Avg win:       %s\n", stats.AvgWin.StringFixed(2))
	fmt.Printf("Avg loss:      %s\n", stats.AvgLoss.StringFixed(2))
	fmt.Printf("Win streak:    %d\n", stats.WinStreak)
	fmt.Printf("Day streak:    %d\n", stats.DayStreak)

	if len(stats.Monthly) > 0 {
		fmt.Println()
		fmt.Println("Monthly P&L:")
		for _, m := range stats.Monthly {
			fmt.Printf("  %-9s %s\n", m.Label, m.Total.StringFixed(2))
		}
	}

	if len(stats.Strategies) > 0 {
		fmt.Println()
		fmt.Println("By strategy:")
		for _, s := range stats.Strategies {
			fmt.Printf("  %-15s %s\n", s.Strategy, s.Total.StringFixed(2))
		}
	}

	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/tradeify/tradeify/pkg/api"
)

// rangeArgs разбирает опциональные позиционные аргументы START и END
func rangeArgs(args []string) (start, end string) {
	if len(args) > 0 {
		start = args[0]
	}
	if len(args) > 1 {
		end = args[1]
	}
	return start, end
}

func (c *Cli) runList(ctx context.Context, args []string) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	start, end := rangeArgs(args)

	trades, err := c.apiClient.ListTrades(ctx, start, end)
	if err != nil {
		return err
	}

	if len(trades) == 0 {
		fmt.Println("No trades found.")
		return nil
	}

	fmt.Printf("=== Trades (%d) ===\n", len(trades))
	fmt.Println()
	for _, trade := range trades {
		sign := ""
		if trade.Result.IsPositive() {
			sign = "+"
		}
		fmt.Printf("%s  %-6s %-4s  %s%s  %s\n",
			trade.CloseDate, trade.Symbol, trade.TradeType, sign, trade.Result.StringFixed(2), trade.Strategy)
		fmt.Printf("  id: %s\n", trade.ID)
		if trade.Notes != "" {
			fmt.Printf("  notes: %s\n", trade.Notes)
		}
	}

	return nil
}

func (c *Cli) runAdd(ctx context.Context) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	fmt.Println("=== Add Trade ===")
	fmt.Println()

	symbol, err := readInput("Symbol: ")
	if err != nil {
		return fmt.Errorf("failed to read symbol: %w", err)
	}

	tradeType, err := readInput("Type (buy/sell, default buy): ")
	if err != nil {
		return fmt.Errorf("failed to read type: %w", err)
	}

	entry, err := readDecimal("Entry price: ")
	if err != nil {
		return err
	}

	exit, err := readDecimal("Exit price: ")
	if err != nil {
		return err
	}

	result, err := readDecimal("Result (P&L): ")
	if err != nil {
		return err
	}

	closeDate, err := readInput("Close date (YYYY-MM-DD [HH:MM:SS]): ")
	if err != nil {
		return fmt.Errorf("failed to read close date: %w", err)
	}

	openDate, err := readInput("Open date (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read open date: %w", err)
	}

	strategy, err := readInput("Strategy (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read strategy: %w", err)
	}

	notes, err := readInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	resp, err := c.apiClient.CreateTrade(ctx, api.TradeRequest{
		Symbol:    symbol,
		TradeType: tradeType,
		Entry:     entry,
		Exit:      exit,
		Result:    result,
		CloseDate: closeDate,
		OpenDate:  openDate,
		Strategy:  strategy,
		Notes:     notes,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Trade added!")
	fmt.Printf("ID: %s\n", resp.ID)

	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: tradeify delete <id>")
	}

	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	if err := c.apiClient.DeleteTrade(ctx, args[0]); err != nil {
		return err
	}

	fmt.Println("✓ Trade deleted.")
	return nil
}

func (c *Cli) runImport(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: tradeify import <file.csv>")
	}

	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	fmt.Println("Importing trades...")

	resp, err := c.apiClient.ImportTrades(ctx, file)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Imported %d trade(s).\n", resp.Imported)
	return nil
}

// readDecimal читает число, пустой ввод означает ноль
func readDecimal(prompt string) (decimal.Decimal, error) {
	s, err := readInput(prompt)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read value: %w", err)
	}
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return d, nil
}

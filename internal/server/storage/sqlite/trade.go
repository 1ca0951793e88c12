package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tradeify/tradeify/internal/models"
)

const tradeColumns = `id, user_id, symbol, trade_type, entry, exit, result, open_date, close_date, strategy, notes, created_at`

// ListTradesForUser returns all trades of the user, close date descending
func (s *Storage) ListTradesForUser(ctx context.Context, userID string) ([]models.Trade, error) {
	query := `
		SELECT ` + tradeColumns + `
		FROM trades
		WHERE user_id = ?
		ORDER BY close_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, *trade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trades: %w", err)
	}

	return trades, nil
}

// CreateTrade persists a new trade
func (s *Storage) CreateTrade(ctx context.Context, trade *models.Trade) error {
	query := `
		INSERT INTO trades (` + tradeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var openDate any
	if trade.OpenDate != nil {
		openDate = *trade.OpenDate
	}

	_, err := s.db.ExecContext(ctx, query,
		trade.ID,
		trade.UserID,
		trade.Symbol,
		string(trade.Type),
		trade.Entry.String(),
		trade.Exit.String(),
		trade.Result.String(),
		openDate,
		trade.CloseDate,
		trade.Strategy,
		trade.Notes,
		trade.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}

	return nil
}

// CreateTrades persists a batch of trades in a single transaction.
// Используется CSV импортом: либо весь файл, либо ничего.
func (s *Storage) CreateTrades(ctx context.Context, trades []models.Trade) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback после commit - no-op

	query := `
		INSERT INTO trades (` + tradeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range trades {
		trade := &trades[i]

		var openDate any
		if trade.OpenDate != nil {
			openDate = *trade.OpenDate
		}

		_, err := stmt.ExecContext(ctx,
			trade.ID,
			trade.UserID,
			trade.Symbol,
			string(trade.Type),
			trade.Entry.String(),
			trade.Exit.String(),
			trade.Result.String(),
			openDate,
			trade.CloseDate,
			trade.Strategy,
			trade.Notes,
			trade.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trade %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateTrade updates the trade with the given id owned by userID.
// Отсутствие затронутых строк не считается ошибкой: чужая или
// несуществующая сделка молча игнорируется.
func (s *Storage) UpdateTrade(ctx context.Context, id, userID string, trade *models.Trade) error {
	query := `
		UPDATE trades
		SET symbol = ?, trade_type = ?, entry = ?, exit = ?, result = ?,
		    open_date = ?, close_date = ?, strategy = ?, notes = ?
		WHERE id = ? AND user_id = ?
	`

	var openDate any
	if trade.OpenDate != nil {
		openDate = *trade.OpenDate
	}

	_, err := s.db.ExecContext(ctx, query,
		trade.Symbol,
		string(trade.Type),
		trade.Entry.String(),
		trade.Exit.String(),
		trade.Result.String(),
		openDate,
		trade.CloseDate,
		trade.Strategy,
		trade.Notes,
		id,
		userID,
	)

	if err != nil {
		return fmt.Errorf("failed to update trade: %w", err)
	}

	return nil
}

// DeleteTrade removes the trade with the given id owned by userID.
// Как и update, no-op при отсутствии строки.
func (s *Storage) DeleteTrade(ctx context.Context, id, userID string) error {
	query := `DELETE FROM trades WHERE id = ? AND user_id = ?`

	if _, err := s.db.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	return nil
}

// scanner покрывает *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanTrade вычитывает одну строку trades в модель
func scanTrade(row scanner) (*models.Trade, error) {
	trade := &models.Trade{}
	var tradeType string
	var entry, exit, result string
	var openDate sql.NullTime

	err := row.Scan(
		&trade.ID,
		&trade.UserID,
		&trade.Symbol,
		&tradeType,
		&entry,
		&exit,
		&result,
		&openDate,
		&trade.CloseDate,
		&trade.Strategy,
		&trade.Notes,
		&trade.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan trade: %w", err)
	}

	trade.Type = models.TradeType(tradeType)
	if openDate.Valid {
		trade.OpenDate = &openDate.Time
	}

	if trade.Entry, err = decimal.NewFromString(entry); err != nil {
		return nil, fmt.Errorf("failed to parse entry price: %w", err)
	}
	if trade.Exit, err = decimal.NewFromString(exit); err != nil {
		return nil, fmt.Errorf("failed to parse exit price: %w", err)
	}
	if trade.Result, err = decimal.NewFromString(result); err != nil {
		return nil, fmt.Errorf("failed to parse result: %w", err)
	}

	return trade, nil
}

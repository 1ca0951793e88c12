package storage

import (
	"context"

	"github.com/tradeify/tradeify/internal/models"
)

// TradeStorage defines interface for trade persistence.
// Every write is scoped by the owning user: an update or delete that
// matches no row is a silent no-op, not an error.
type TradeStorage interface {
	// ListTradesForUser returns all trades of the user,
	// ordered by close date descending
	ListTradesForUser(ctx context.Context, userID string) ([]models.Trade, error)

	// CreateTrade persists a new trade
	CreateTrade(ctx context.Context, trade *models.Trade) error

	// CreateTrades persists a batch of trades (CSV import)
	CreateTrades(ctx context.Context, trades []models.Trade) error

	// UpdateTrade updates the trade with the given id owned by userID
	UpdateTrade(ctx context.Context, id, userID string, trade *models.Trade) error

	// DeleteTrade removes the trade with the given id owned by userID
	DeleteTrade(ctx context.Context, id, userID string) error
}

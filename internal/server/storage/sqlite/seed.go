package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradeify/tradeify/internal/crypto"
	"github.com/tradeify/tradeify/internal/models"
)

// Демо-учетка, создаваемая при первом запуске
const (
	DemoUsername = "demo_trader"
	DemoEmail    = "demo@tradeify.com"
	DemoPassword = "password123"
)

// seedTrade - строка демо-данных
type seedTrade struct {
	symbol    string
	tradeType models.TradeType
	entry     string
	exit      string
	result    string
	closeDate string
	strategy  string
	notes     string
}

var demoTrades = []seedTrade{
	{"AAPL", models.TradeTypeBuy, "140.25", "145.10", "485.00", "2024-07-01", "Breakout", "Strong earnings beat, breakout above resistance."},
	{"TSLA", models.TradeTypeSell, "725.00", "690.50", "690.00", "2024-07-03", "Mean Reversion", "Shorted after parabolic move, target hit."},
	{"NVDA", models.TradeTypeBuy, "405.40", "415.75", "520.00", "2024-07-05", "Trend Following", "Riding AI momentum with tight stop."},
	{"AMZN", models.TradeTypeBuy, "118.20", "120.00", "180.00", "2024-07-07", "Breakout", "Prime day catalyst, strong volume."},
	{"MSFT", models.TradeTypeSell, "310.00", "300.40", "960.00", "2024-07-10", "Pullback Short", "Bearish divergence on RSI."},
	{"SPY", models.TradeTypeBuy, "420.00", "430.20", "1020.00", "2024-07-12", "Swing Trade", "Broad market breakout."},
	{"QQQ", models.TradeTypeBuy, "350.00", "365.00", "1500.00", "2024-07-15", "Momentum", "Tech leading market higher."},
	{"AMD", models.TradeTypeSell, "105.50", "101.25", "425.00", "2024-07-18", "Reversal", "Failed breakout, high volume reversal."},
	{"GOOGL", models.TradeTypeBuy, "125.00", "132.50", "750.00", "2024-07-20", "Earnings Play", "Beat expectations, gap and go."},
	{"META", models.TradeTypeSell, "290.00", "275.00", "1500.00", "2024-07-22", "Gap Fade", "Faded gap after weak guidance."},
}

// EnsureSeedData создает демо-пользователя с десятью сделками за июль 2024,
// если база пуста. Повторные вызовы ничего не делают.
func (s *Storage) EnsureSeedData(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := crypto.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := &models.User{
		ID:             uuid.New().String(),
		Username:       DemoUsername,
		Email:          DemoEmail,
		PasswordHash:   passwordHash,
		AccountBalance: decimal.Zero,
		CreatedAt:      time.Now(),
	}

	if err := s.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	trades := make([]models.Trade, 0, len(demoTrades))
	for _, st := range demoTrades {
		closeDate, err := time.Parse("2006-01-02", st.closeDate)
		if err != nil {
			return fmt.Errorf("failed to parse seed date %q: %w", st.closeDate, err)
		}

		trades = append(trades, models.Trade{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Symbol:    st.symbol,
			Type:      st.tradeType,
			Entry:     decimal.RequireFromString(st.entry),
			Exit:      decimal.RequireFromString(st.exit),
			Result:    decimal.RequireFromString(st.result),
			CloseDate: closeDate,
			Strategy:  st.strategy,
			Notes:     st.notes,
			CreatedAt: time.Now(),
		})
	}

	if err := s.CreateTrades(ctx, trades); err != nil {
		return fmt.Errorf("failed to seed demo trades: %w", err)
	}

	return nil
}

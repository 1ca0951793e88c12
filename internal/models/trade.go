package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TradeType определяет направление сделки
type TradeType string

const (
	// TradeTypeBuy - покупка (long)
	TradeTypeBuy TradeType = "buy"
	// TradeTypeSell - продажа (short)
	TradeTypeSell TradeType = "sell"
)

// ParseTradeType нормализует строковое направление сделки.
// Все, что не "sell" (без учета регистра), считается "buy".
func ParseTradeType(s string) TradeType {
	if strings.EqualFold(strings.TrimSpace(s), string(TradeTypeSell)) {
		return TradeTypeSell
	}
	return TradeTypeBuy
}

// Trade представляет одну закрытую сделку пользователя
type Trade struct {
	ID        string          `json:"id"`                  // UUID сделки
	UserID    string          `json:"user_id"`             // ID владельца
	Symbol    string          `json:"symbol"`              // тикер (например, "AAPL")
	Type      TradeType       `json:"trade_type"`          // buy | sell
	Entry     decimal.Decimal `json:"entry"`               // цена входа (>= 0)
	Exit      decimal.Decimal `json:"exit"`                // цена выхода (>= 0)
	Result    decimal.Decimal `json:"result"`              // P&L сделки (знаковый)
	OpenDate  *time.Time      `json:"open_date,omitempty"` // время открытия (опционально)
	CloseDate time.Time       `json:"close_date"`          // дата закрытия, обязательна для сортировки
	Strategy  string          `json:"strategy,omitempty"`  // название стратегии
	Notes     string          `json:"notes,omitempty"`     // свободные заметки
	CreatedAt time.Time       `json:"created_at"`          // время создания записи
}

// EffectiveDate возвращает дату, по которой сделка попадает в выборки:
// open date, если задана, иначе close date.
func (t *Trade) EffectiveDate() time.Time {
	if t.OpenDate != nil && !t.OpenDate.IsZero() {
		return *t.OpenDate
	}
	return t.CloseDate
}

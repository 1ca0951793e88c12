package api

import "github.com/shopspring/decimal"

// TradeRequest представляет сделку в запросе на создание или обновление.
// Даты принимаются строками в одном из поддерживаемых форматов
// ("2006-01-02", "2006-01-02 15:04:05", RFC3339).
type TradeRequest struct {
	Symbol    string          `json:"symbol"`
	TradeType string          `json:"trade_type"` // buy | sell
	Entry     decimal.Decimal `json:"entry"`
	Exit      decimal.Decimal `json:"exit"`
	Result    decimal.Decimal `json:"result"`
	CloseDate string          `json:"close_date"`
	OpenDate  string          `json:"open_date,omitempty"`
	Strategy  string          `json:"strategy,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// TradeResponse представляет сделку в ответах API
type TradeResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Symbol    string          `json:"symbol"`
	TradeType string          `json:"trade_type"`
	Entry     decimal.Decimal `json:"entry"`
	Exit      decimal.Decimal `json:"exit"`
	Result    decimal.Decimal `json:"result"`
	CloseDate string          `json:"close_date"`
	OpenDate  string          `json:"open_date,omitempty"`
	Strategy  string          `json:"strategy,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// ImportResponse представляет итог bulk-импорта CSV
type ImportResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"` // количество импортированных строк
}

// MessageResponse - простой ответ с сообщением (например, на delete)
type MessageResponse struct {
	Message string `json:"message"`
}

package api

import "github.com/shopspring/decimal"

// PnLPoint - точка кумулятивной кривой P&L
type PnLPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyPnL - суммарный результат за календарный месяц
type MonthlyPnL struct {
	Label string          `json:"label"` // "Jul 2024"
	Total decimal.Decimal `json:"total"`
}

// StrategyPnL - суммарный результат по стратегии
type StrategyPnL struct {
	Strategy string          `json:"strategy"`
	Total    decimal.Decimal `json:"total"`
}

// StatsResponse - сводная статистика для дашборда.
// ProfitFactor равен null, когда убытков нет: бесконечный фактор
// передается флагом profit_factor_infinite.
type StatsResponse struct {
	TotalTrades          int              `json:"total_trades"`
	Wins                 int              `json:"wins"`
	Losses               int              `json:"losses"`
	TotalPnL             decimal.Decimal  `json:"total_pnl"`
	WinRate              int              `json:"win_rate"`
	ProfitFactor         *decimal.Decimal `json:"profit_factor"`
	ProfitFactorInfinite bool             `json:"profit_factor_infinite"`
	AvgWin               decimal.Decimal  `json:"avg_win"`
	AvgLoss              decimal.Decimal  `json:"avg_loss"`
	WinStreak            int              `json:"win_streak"`
	DayStreak            int              `json:"day_streak"`
	Cumulative           []PnLPoint       `json:"cumulative"`
	Monthly              []MonthlyPnL     `json:"monthly"`
	Strategies           []StrategyPnL    `json:"strategies"`
}

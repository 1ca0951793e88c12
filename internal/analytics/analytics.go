// Package analytics вычисляет производную статистику по списку сделок.
//
// Все функции пакета чистые: принимают snapshot сделок, ничего не мутируют
// и не обращаются к I/O, поэтому их безопасно перезапускать на частичных
// или обновленных данных.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeify/tradeify/internal/models"
)

// dayStreakTolerance - допуск на clock skew при подсчете дневной серии:
// сутки плюс одна секунда между соседними выигрышными сделками.
const dayStreakTolerance = 24*time.Hour + time.Second

// UnspecifiedStrategy - метка для сделок без стратегии
const UnspecifiedStrategy = "Unspecified"

// PnLPoint - одна точка кумулятивной кривой P&L
type PnLPoint struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyPnL - суммарный результат за календарный месяц
type MonthlyPnL struct {
	Label string          `json:"label"` // например, "Jul 2024"
	Total decimal.Decimal `json:"total"`
}

// StrategyPnL - суммарный результат по стратегии
type StrategyPnL struct {
	Strategy string          `json:"strategy"`
	Total    decimal.Decimal `json:"total"`
}

// isWin: сделка выиграна строго при result > 0.
// Нулевой результат считается проигрышем - break-even не победа.
func isWin(t models.Trade) bool {
	return t.Result.IsPositive()
}

// FilterByRange оставляет сделки, чья эффективная дата (open date, если
// задана, иначе close date) попадает в [start, end] включительно.
// nil граница не накладывает ограничения. Сделка без разрешимой даты
// исключается, как только задана хотя бы одна граница.
func FilterByRange(trades []models.Trade, start, end *time.Time) []models.Trade {
	if start == nil && end == nil {
		return trades
	}

	filtered := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		d := t.EffectiveDate()
		if d.IsZero() {
			continue
		}
		if start != nil && d.Before(*start) {
			continue
		}
		if end != nil && d.After(*end) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// SortByCloseDateDesc возвращает копию списка, отсортированную по close date
// по убыванию (порядок для отображения). Сортировка стабильная.
func SortByCloseDateDesc(trades []models.Trade) []models.Trade {
	sorted := make([]models.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CloseDate.After(sorted[j].CloseDate)
	})
	return sorted
}

// sortByCloseDateAsc возвращает копию в хронологическом порядке
func sortByCloseDateAsc(trades []models.Trade) []models.Trade {
	sorted := make([]models.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CloseDate.Before(sorted[j].CloseDate)
	})
	return sorted
}

// CumulativePnL строит кумулятивную кривую P&L: сделки обходятся в
// хронологическом порядке, result накапливается в running total,
// на каждую сделку приходится одна точка.
func CumulativePnL(trades []models.Trade) []PnLPoint {
	points := make([]PnLPoint, 0, len(trades))
	total := decimal.Zero
	for _, t := range sortByCloseDateAsc(trades) {
		total = total.Add(t.Result)
		points = append(points, PnLPoint{Date: t.CloseDate, Total: total})
	}
	return points
}

// TotalPnL суммирует result всех сделок
func TotalPnL(trades []models.Trade) decimal.Decimal {
	total := decimal.Zero
	for _, t := range trades {
		total = total.Add(t.Result)
	}
	return total
}

// WinCount возвращает количество выигрышных сделок (result > 0)
func WinCount(trades []models.Trade) int {
	wins := 0
	for _, t := range trades {
		if isWin(t) {
			wins++
		}
	}
	return wins
}

// WinRate возвращает процент выигрышных сделок, округленный до целого.
// Для пустого списка возвращает 0 (а не делит на ноль).
func WinRate(trades []models.Trade) int {
	if len(trades) == 0 {
		return 0
	}
	wins := WinCount(trades)
	return int(math.Round(float64(wins) / float64(len(trades)) * 100))
}

// ProfitFactor возвращает отношение суммы выигрышей к модулю суммы
// проигрышей. Когда проигрышей нет, вместо деления на ноль возвращается
// infinite=true.
func ProfitFactor(trades []models.Trade) (factor decimal.Decimal, infinite bool) {
	totalWin := decimal.Zero
	totalLoss := decimal.Zero
	for _, t := range trades {
		if isWin(t) {
			totalWin = totalWin.Add(t.Result)
		} else if t.Result.IsNegative() {
			totalLoss = totalLoss.Add(t.Result)
		}
	}

	if totalLoss.IsZero() {
		return decimal.Zero, true
	}
	return totalWin.Div(totalLoss.Abs()), false
}

// AvgWin возвращает средний результат выигрышной сделки,
// ноль - если выигрышей нет
func AvgWin(trades []models.Trade) decimal.Decimal {
	total := decimal.Zero
	count := 0
	for _, t := range trades {
		if isWin(t) {
			total = total.Add(t.Result)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

// AvgLoss возвращает средний модуль результата убыточной сделки (result < 0),
// ноль - если убытков нет
func AvgLoss(trades []models.Trade) decimal.Decimal {
	total := decimal.Zero
	count := 0
	for _, t := range trades {
		if t.Result.IsNegative() {
			total = total.Add(t.Result)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Abs()
}

// WinStreak считает текущую серию выигрышных сделок: сделки сортируются
// по close date по убыванию, серия обрывается на первой не-выигрышной.
func WinStreak(trades []models.Trade) int {
	streak := 0
	for _, t := range SortByCloseDateDesc(trades) {
		if !isWin(t) {
			break
		}
		streak++
	}
	return streak
}

// DayStreak считает серию дней с выигрышами: берутся только выигрышные
// сделки по close date по убыванию, серия продолжается, пока разрыв между
// соседними датами не превышает 24h + 1s (допуск на clock skew).
func DayStreak(trades []models.Trade) int {
	dates := make([]time.Time, 0, len(trades))
	for _, t := range SortByCloseDateDesc(trades) {
		if isWin(t) {
			dates = append(dates, t.CloseDate)
		}
	}
	if len(dates) == 0 {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		diff := dates[i-1].Sub(dates[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > dayStreakTolerance {
			break
		}
		streak++
	}
	return streak
}

// MonthlyBreakdown группирует result по месяцу close date.
// Порядок групп - порядок первого появления месяца во входном списке.
func MonthlyBreakdown(trades []models.Trade) []MonthlyPnL {
	totals := make(map[string]int) // label -> index в результате
	result := make([]MonthlyPnL, 0)

	for _, t := range trades {
		label := t.CloseDate.Format("Jan 2006")
		idx, ok := totals[label]
		if !ok {
			totals[label] = len(result)
			result = append(result, MonthlyPnL{Label: label, Total: t.Result})
			continue
		}
		result[idx].Total = result[idx].Total.Add(t.Result)
	}
	return result
}

// StrategyBreakdown группирует result по стратегии.
// Сделки без стратегии попадают в группу "Unspecified".
// Порядок групп - порядок первого появления стратегии.
func StrategyBreakdown(trades []models.Trade) []StrategyPnL {
	totals := make(map[string]int)
	result := make([]StrategyPnL, 0)

	for _, t := range trades {
		strategy := t.Strategy
		if strategy == "" {
			strategy = UnspecifiedStrategy
		}
		idx, ok := totals[strategy]
		if !ok {
			totals[strategy] = len(result)
			result = append(result, StrategyPnL{Strategy: strategy, Total: t.Result})
			continue
		}
		result[idx].Total = result[idx].Total.Add(t.Result)
	}
	return result
}

// Summary - сводная статистика для дашборда
type Summary struct {
	TotalTrades          int             `json:"total_trades"`
	Wins                 int             `json:"wins"`
	Losses               int             `json:"losses"`
	TotalPnL             decimal.Decimal `json:"total_pnl"`
	WinRate              int             `json:"win_rate"`
	ProfitFactor         decimal.Decimal `json:"profit_factor"`
	ProfitFactorInfinite bool            `json:"profit_factor_infinite"`
	AvgWin               decimal.Decimal `json:"avg_win"`
	AvgLoss              decimal.Decimal `json:"avg_loss"`
	WinStreak            int             `json:"win_streak"`
	DayStreak            int             `json:"day_streak"`
	Cumulative           []PnLPoint      `json:"cumulative"`
	Monthly              []MonthlyPnL    `json:"monthly"`
	Strategies           []StrategyPnL   `json:"strategies"`
}

// Summarize собирает полную сводку по списку сделок
func Summarize(trades []models.Trade) Summary {
	wins := WinCount(trades)
	factor, infinite := ProfitFactor(trades)

	return Summary{
		TotalTrades:          len(trades),
		Wins:                 wins,
		Losses:               len(trades) - wins,
		TotalPnL:             TotalPnL(trades),
		WinRate:              WinRate(trades),
		ProfitFactor:         factor,
		ProfitFactorInfinite: infinite,
		AvgWin:               AvgWin(trades),
		AvgLoss:              AvgLoss(trades),
		WinStreak:            WinStreak(trades),
		DayStreak:            DayStreak(trades),
		Cumulative:           CumulativePnL(trades),
		Monthly:              MonthlyBreakdown(trades),
		Strategies:           StrategyBreakdown(trades),
	}
}

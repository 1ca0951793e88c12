// Package importer разбирает CSV с историей сделок для bulk-импорта.
//
// Импорт максимально терпимый (best-effort): политика подстановки
// значений по умолчанию описана явной таблицей колонок, malformed
// числа коэрцируются в ноль, а не отклоняют строку.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeify/tradeify/internal/models"
)

// column описывает одну логическую колонку CSV: допустимые варианты
// заголовка (в порядке приоритета) и fallback-значение
type column struct {
	aliases  []string
	fallback string
}

// Таблица политики импорта: поле -> варианты заголовка + значение по
// умолчанию. Дата подставляется отдельно (текущая дата на момент импорта).
var columns = map[string]column{
	"symbol":     {aliases: []string{"symbol", "Symbol"}},
	"trade_type": {aliases: []string{"trade_type", "Type"}, fallback: "buy"},
	"entry":      {aliases: []string{"entry", "Entry"}, fallback: "0"},
	"exit":       {aliases: []string{"exit", "Exit"}, fallback: "0"},
	"result":     {aliases: []string{"result", "Result"}, fallback: "0"},
	"close_date": {aliases: []string{"close_date", "Date"}},
	"open_date":  {aliases: []string{"open_date", "OpenDate"}},
	"strategy":   {aliases: []string{"strategy", "Strategy"}, fallback: "Imported"},
	"notes":      {aliases: []string{"notes", "Notes"}},
}

// ErrEmptyFile возвращается, когда в CSV нет ни одной строки данных
var ErrEmptyFile = fmt.Errorf("csv file is empty")

// Parse читает CSV (первая строка - заголовок) и возвращает сделки,
// готовые к сохранению. ID и владелец не заполняются - это дело caller'а.
// now задает дату по умолчанию для строк без close_date.
func Parse(r io.Reader, now time.Time) ([]models.Trade, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // строки с неполным числом полей не отклоняем
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	// Индекс колонок по имени заголовка
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var trades []models.Trade
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}

		trades = append(trades, rowToTrade(index, record, now))
	}

	if len(trades) == 0 {
		return nil, ErrEmptyFile
	}

	return trades, nil
}

// rowToTrade превращает одну строку CSV в сделку, применяя политику
// значений по умолчанию
func rowToTrade(index map[string]int, record []string, now time.Time) models.Trade {
	get := func(field string) string {
		col := columns[field]
		for _, alias := range col.aliases {
			i, ok := index[alias]
			if !ok || i >= len(record) {
				continue
			}
			if record[i] != "" {
				return record[i]
			}
		}
		return col.fallback
	}

	trade := models.Trade{
		Symbol:   get("symbol"),
		Type:     models.ParseTradeType(get("trade_type")),
		Entry:    coerceDecimal(get("entry")),
		Exit:     coerceDecimal(get("exit")),
		Result:   coerceDecimal(get("result")),
		Strategy: get("strategy"),
		Notes:    get("notes"),
	}

	closeDate, err := models.ParseDateTime(get("close_date"))
	if err != nil || closeDate.IsZero() {
		closeDate = now
	}
	trade.CloseDate = closeDate

	openDate, err := models.ParseDateTime(get("open_date"))
	if err != nil || openDate.IsZero() {
		openDate = now
	}
	trade.OpenDate = &openDate

	return trade
}

// coerceDecimal разбирает число, malformed значение коэрцируется в ноль
func coerceDecimal(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

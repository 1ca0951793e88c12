package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeify/tradeify/internal/models"
)

var importedAt = time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	csvData := `symbol,trade_type,entry,exit,result,close_date,strategy,notes
AAPL,buy,140.25,145.10,485.00,2024-07-01,Breakout,Earnings beat
TSLA,sell,725.00,690.50,690.00,2024-07-03,Mean Reversion,Parabolic short
`

	trades, err := Parse(strings.NewReader(csvData), importedAt)
	require.NoError(t, err)
	require.Len(t, trades, 2)

	first := trades[0]
	assert.Equal(t, "AAPL", first.Symbol)
	assert.Equal(t, models.TradeTypeBuy, first.Type)
	assert.True(t, first.Entry.Equal(decimal.RequireFromString("140.25")))
	assert.True(t, first.Result.Equal(decimal.RequireFromString("485.00")))
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), first.CloseDate)
	assert.Equal(t, "Breakout", first.Strategy)
	assert.Equal(t, "Earnings beat", first.Notes)

	assert.Equal(t, models.TradeTypeSell, trades[1].Type)
}

func TestParse_AlternateHeaders(t *testing.T) {
	// Вариант заголовков в стиле экспорта брокера
	csvData := `Symbol,Type,Entry,Exit,Result,Date,Strategy,Notes
NVDA,SELL,405.40,415.75,520.00,2024-07-05,Trend Following,AI momentum
`

	trades, err := Parse(strings.NewReader(csvData), importedAt)
	require.NoError(t, err)
	require.Len(t, trades, 1)

	assert.Equal(t, "NVDA", trades[0].Symbol)
	// "SELL" в любом регистре распознается как sell
	assert.Equal(t, models.TradeTypeSell, trades[0].Type)
	assert.Equal(t, time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC), trades[0].CloseDate)
}

func TestParse_Defaults(t *testing.T) {
	// Только символ: все остальное должно подставиться по политике
	csvData := "symbol\nAAPL\n"

	trades, err := Parse(strings.NewReader(csvData), importedAt)
	require.NoError(t, err)
	require.Len(t, trades, 1)

	trade := trades[0]
	assert.Equal(t, models.TradeTypeBuy, trade.Type)
	assert.True(t, trade.Entry.IsZero())
	assert.True(t, trade.Exit.IsZero())
	assert.True(t, trade.Result.IsZero())
	assert.Equal(t, importedAt, trade.CloseDate)
	require.NotNil(t, trade.OpenDate)
	assert.Equal(t, importedAt, *trade.OpenDate)
	assert.Equal(t, "Imported", trade.Strategy)
	assert.Empty(t, trade.Notes)
}

func TestParse_MalformedNumericCoerced(t *testing.T) {
	csvData := `symbol,entry,result,close_date
AAPL,not-a-number,garbage,2024-07-01
`

	trades, err := Parse(strings.NewReader(csvData), importedAt)
	require.NoError(t, err)
	require.Len(t, trades, 1)

	// Malformed числа коэрцируются в ноль, строка не отклоняется
	assert.True(t, trades[0].Entry.IsZero())
	assert.True(t, trades[0].Result.IsZero())
}

func TestParse_MalformedDateDefaults(t *testing.T) {
	csvData := `symbol,close_date
AAPL,31/07/2024
`

	trades, err := Parse(strings.NewReader(csvData), importedAt)
	require.NoError(t, err)
	assert.Equal(t, importedAt, trades[0].CloseDate)
}

func TestParse_Empty(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""), importedAt)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := Parse(strings.NewReader("symbol,entry\n"), importedAt)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})
}

func TestParse_ShortRecord(t *testing.T) {
	// Строка с меньшим числом полей, чем в заголовке, не валит импорт
	csvData := "symbol,entry,exit,result\nAAPL,140.25\n"

	trades, err := Parse(strings.NewReader(csvData), importedAt)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.True(t, trades[0].Entry.Equal(decimal.RequireFromString("140.25")))
	assert.True(t, trades[0].Result.IsZero())
}

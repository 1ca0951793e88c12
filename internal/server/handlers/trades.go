package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tradeify/tradeify/internal/analytics"
	"github.com/tradeify/tradeify/internal/importer"
	"github.com/tradeify/tradeify/internal/models"
	"github.com/tradeify/tradeify/internal/server/storage"
	"github.com/tradeify/tradeify/pkg/api"
)

// maxImportSize - предел размера CSV файла при импорте (5 MB)
const maxImportSize = 5 << 20

// TradesHandler обрабатывает CRUD сделок, импорт CSV и статистику
type TradesHandler struct {
	logger       *slog.Logger
	tradeStorage storage.TradeStorage
}

// NewTradesHandler создает новый handler для сделок
func NewTradesHandler(logger *slog.Logger, tradeStorage storage.TradeStorage) *TradesHandler {
	return &TradesHandler{
		logger:       logger,
		tradeStorage: tradeStorage,
	}
}

// userIDFromContext достает ID пользователя, положенный auth middleware
func userIDFromContext(r *http.Request) (string, bool) {
	return GetUserID(r.Context())
}

// List обрабатывает GET /api/v1/trades
// Возвращает сделки пользователя по close date по убыванию.
// Опциональные query-параметры start/end фильтруют по эффективной дате.
func (h *TradesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(r)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	start, end, err := parseRangeQuery(r)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	trades, err := h.tradeStorage.ListTradesForUser(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list trades", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	trades = analytics.FilterByRange(trades, start, end)

	resp := make([]api.TradeResponse, 0, len(trades))
	for i := range trades {
		resp = append(resp, tradeResponse(&trades[i]))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Create обрабатывает POST /api/v1/trades
func (h *TradesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(r)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode trade request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	trade, err := tradeFromRequest(&req, userID)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	trade.ID = uuid.New().String()
	trade.CreatedAt = time.Now()

	if err := h.tradeStorage.CreateTrade(ctx, trade); err != nil {
		h.logger.ErrorContext(ctx, "failed to create trade", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "trade created",
		slog.String("trade_id", trade.ID),
		slog.String("user_id", userID),
		slog.String("symbol", trade.Symbol))

	h.sendJSON(w, tradeResponse(trade), http.StatusCreated)
}

// Update обрабатывает PUT /api/v1/trades/{id}
// Update несуществующей или чужой сделки - тихий no-op
func (h *TradesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(r)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tradeID := r.PathValue("id")
	if tradeID == "" {
		h.sendError(w, "trade id is required", http.StatusBadRequest)
		return
	}

	var req api.TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode trade request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	trade, err := tradeFromRequest(&req, userID)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	trade.ID = tradeID

	if err := h.tradeStorage.UpdateTrade(ctx, tradeID, userID, trade); err != nil {
		h.logger.ErrorContext(ctx, "failed to update trade", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, tradeResponse(trade), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/trades/{id}
// Delete несуществующей или чужой сделки - тихий no-op
func (h *TradesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(r)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tradeID := r.PathValue("id")
	if tradeID == "" {
		h.sendError(w, "trade id is required", http.StatusBadRequest)
		return
	}

	if err := h.tradeStorage.DeleteTrade(ctx, tradeID, userID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete trade", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.MessageResponse{Message: "Trade deleted."}, http.StatusOK)
}

// Import обрабатывает POST /api/v1/trades/import
// Тело запроса - CSV файл целиком. Импорт best-effort построчно:
// malformed значения коэрцируются по политике импортера.
func (h *TradesHandler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(r)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	trades, err := importer.Parse(http.MaxBytesReader(w, r.Body, maxImportSize), time.Now())
	if err != nil {
		if errors.Is(err, importer.ErrEmptyFile) {
			h.sendError(w, "CSV file is empty", http.StatusBadRequest)
			return
		}
		h.logger.WarnContext(ctx, "failed to parse import csv", slog.Any("error", err))
		h.sendError(w, "invalid CSV file", http.StatusBadRequest)
		return
	}

	for i := range trades {
		trades[i].ID = uuid.New().String()
		trades[i].UserID = userID
		trades[i].CreatedAt = time.Now()
	}

	if err := h.tradeStorage.CreateTrades(ctx, trades); err != nil {
		h.logger.ErrorContext(ctx, "failed to save imported trades", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "trades imported",
		slog.String("user_id", userID),
		slog.Int("imported", len(trades)))

	resp := api.ImportResponse{
		Message:  "Trades imported successfully.",
		Imported: len(trades),
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Stats обрабатывает GET /api/v1/trades/stats
// Возвращает сводную статистику по сделкам пользователя,
// опционально ограниченную диапазоном дат
func (h *TradesHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(r)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	start, end, err := parseRangeQuery(r)
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	trades, err := h.tradeStorage.ListTradesForUser(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list trades", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	summary := analytics.Summarize(analytics.FilterByRange(trades, start, end))

	h.sendJSON(w, statsResponse(summary), http.StatusOK)
}

// parseRangeQuery разбирает опциональные query-параметры start и end
func parseRangeQuery(r *http.Request) (start, end *time.Time, err error) {
	if raw := r.URL.Query().Get("start"); raw != "" {
		t, err := models.ParseDateTime(raw)
		if err != nil {
			return nil, nil, errors.New("invalid start date")
		}
		start = &t
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		t, err := models.ParseDateTime(raw)
		if err != nil {
			return nil, nil, errors.New("invalid end date")
		}
		end = &t
	}
	return start, end, nil
}

// tradeFromRequest собирает модель сделки из запроса.
// Close date обязательна: без нее сделку нельзя упорядочить.
func tradeFromRequest(req *api.TradeRequest, userID string) (*models.Trade, error) {
	closeDate, err := models.ParseDateTime(req.CloseDate)
	if err != nil {
		return nil, errors.New("invalid close_date")
	}
	if closeDate.IsZero() {
		return nil, errors.New("close_date is required")
	}

	trade := &models.Trade{
		UserID:    userID,
		Symbol:    req.Symbol,
		Type:      models.ParseTradeType(req.TradeType),
		Entry:     req.Entry,
		Exit:      req.Exit,
		Result:    req.Result,
		CloseDate: closeDate,
		Strategy:  req.Strategy,
		Notes:     req.Notes,
	}

	if req.OpenDate != "" {
		openDate, err := models.ParseDateTime(req.OpenDate)
		if err != nil {
			return nil, errors.New("invalid open_date")
		}
		trade.OpenDate = &openDate
	}

	return trade, nil
}

// tradeResponse собирает представление сделки для API
func tradeResponse(trade *models.Trade) api.TradeResponse {
	resp := api.TradeResponse{
		ID:        trade.ID,
		UserID:    trade.UserID,
		Symbol:    trade.Symbol,
		TradeType: string(trade.Type),
		Entry:     trade.Entry,
		Exit:      trade.Exit,
		Result:    trade.Result,
		CloseDate: models.FormatDateTime(trade.CloseDate),
		Strategy:  trade.Strategy,
		Notes:     trade.Notes,
	}
	if trade.OpenDate != nil {
		resp.OpenDate = models.FormatDateTime(*trade.OpenDate)
	}
	return resp
}

// statsResponse конвертирует сводку аналитики в формат API
func statsResponse(s analytics.Summary) api.StatsResponse {
	resp := api.StatsResponse{
		TotalTrades:          s.TotalTrades,
		Wins:                 s.Wins,
		Losses:               s.Losses,
		TotalPnL:             s.TotalPnL,
		WinRate:              s.WinRate,
		ProfitFactorInfinite: s.ProfitFactorInfinite,
		AvgWin:               s.AvgWin,
		AvgLoss:              s.AvgLoss,
		WinStreak:            s.WinStreak,
		DayStreak:            s.DayStreak,
		Cumulative:           make([]api.PnLPoint, 0, len(s.Cumulative)),
		Monthly:              make([]api.MonthlyPnL, 0, len(s.Monthly)),
		Strategies:           make([]api.StrategyPnL, 0, len(s.Strategies)),
	}

	if !s.ProfitFactorInfinite {
		factor := s.ProfitFactor
		resp.ProfitFactor = &factor
	}

	for _, p := range s.Cumulative {
		resp.Cumulative = append(resp.Cumulative, api.PnLPoint{
			Date:  models.FormatDateTime(p.Date),
			Total: p.Total,
		})
	}
	for _, m := range s.Monthly {
		resp.Monthly = append(resp.Monthly, api.MonthlyPnL{Label: m.Label, Total: m.Total})
	}
	for _, st := range s.Strategies {
		resp.Strategies = append(resp.Strategies, api.StrategyPnL{Strategy: st.Strategy, Total: st.Total})
	}

	return resp
}

// sendJSON отправляет JSON ответ
func (h *TradesHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	sendJSON(h.logger, w, data, statusCode)
}

// sendError отправляет JSON ответ с ошибкой
func (h *TradesHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	sendError(h.logger, w, message, statusCode)
}

package storage

import (
	"context"
	"time"
)

// SessionStorage определяет интерфейс хранения сессии на клиенте.
// Токен хранится как есть: это подписанный JWT, он не содержит секретов.
type SessionStorage interface {
	// SaveAuth сохраняет данные сессии после логина
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth возвращает сохраненную сессию.
	// Возвращает ErrAuthNotFound если сессии нет.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth удаляет сохраненную сессию (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated проверяет, есть ли непросроченная сессия
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData представляет сохраненную сессию пользователя
type AuthData struct {
	Username  string    `json:"username"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

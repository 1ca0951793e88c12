package handlers

import "context"

// contextKey - собственный тип ключа контекста, чтобы не пересекаться
// с ключами других пакетов
type contextKey string

const (
	// UserIDKey - ключ контекста с ID аутентифицированного пользователя
	UserIDKey contextKey = "user_id"
	// UsernameKey - ключ контекста с username аутентифицированного пользователя
	UsernameKey contextKey = "username"
)

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

// GetUsername достает username пользователя из контекста
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok && username != ""
}

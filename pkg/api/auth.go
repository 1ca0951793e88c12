package api

import "github.com/shopspring/decimal"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string          `json:"username"`          // username пользователя
	Password string          `json:"password"`          // plaintext пароль (только в запросе)
	Email    string          `json:"email,omitempty"`   // email (опционально)
	Balance  decimal.Decimal `json:"balance,omitempty"` // стартовый баланс счета (опционально, >= 0)
}

// UserSummary - публичное представление пользователя (без хеша пароля)
type UserSummary struct {
	ID             string          `json:"id"`
	Username       string          `json:"username"`
	Email          string          `json:"email,omitempty"`
	AccountBalance decimal.Decimal `json:"account_balance"`
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// LoginRequest представляет запрос на аутентификацию.
// Identifier - username или email; поле username поддерживается
// как синоним для старых клиентов.
type LoginRequest struct {
	Identifier string `json:"identifier,omitempty"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password"`
}

// LoginResponse представляет ответ с токеном сессии
type LoginResponse struct {
	Token     string      `json:"token"`      // JWT access token
	ExpiresIn int64       `json:"expires_in"` // время жизни токена в секундах
	User      UserSummary `json:"user"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User представляет пользователя журнала сделок
type User struct {
	ID             string          `json:"id"`              // UUID пользователя
	Username       string          `json:"username"`        // уникальный username
	Email          string          `json:"email,omitempty"` // email (опционально)
	PasswordHash   string          `json:"-"`               // encoded PBKDF2 хеш пароля, наружу не отдается
	AccountBalance decimal.Decimal `json:"account_balance"` // стартовый баланс счета (>= 0)
	CreatedAt      time.Time       `json:"created_at"`      // время регистрации
}

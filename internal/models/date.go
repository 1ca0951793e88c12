package models

import (
	"fmt"
	"strings"
	"time"
)

// Форматы даты/времени, которые принимает API и CSV импорт.
// Порядок важен: сначала самые строгие.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateTimeFormat - канонический формат даты/времени в ответах API
const DateTimeFormat = "2006-01-02 15:04:05"

// ParseDateTime разбирает дату из строки в одном из поддерживаемых форматов.
// Пустая строка не ошибка: возвращается нулевое время.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", value)
}

// FormatDateTime форматирует время в канонический вид для API.
// Нулевое время превращается в пустую строку.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeFormat)
}

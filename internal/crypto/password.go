package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Параметры деривации пароля.
// Количество итераций закодировано внутри хеша, поэтому его можно
// поднимать со временем без инвалидации старых хешей.
const (
	// Iterations - количество итераций PBKDF2 (time cost)
	Iterations = 120000
	// SaltSize - размер соли в байтах
	SaltSize = 16
	// KeyLen - длина производного ключа в байтах
	KeyLen = 32
)

// hashParts - количество секций в encoded хеше: iterations:salt:key
const hashParts = 3

// HashPassword хеширует пароль через PBKDF2-SHA256 со случайной солью.
// Формат результата: "{iterations}:{salt-hex}:{key-hex}".
// Plaintext пароль никуда не логируется и не возвращается.
func HashPassword(password string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), []byte(hex.EncodeToString(salt)), Iterations, KeyLen, sha256.New)

	encoded := fmt.Sprintf("%d:%s:%s", Iterations, hex.EncodeToString(salt), hex.EncodeToString(key))
	return encoded, nil
}

// VerifyPassword проверяет пароль против сохраненного encoded хеша.
// На любом malformed входе возвращает false, а не ошибку (fail closed).
// Сравнение ключей строго constant-time: наивное сравнение утекает
// по таймингу позицию первого несовпадающего байта.
func VerifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, ":")
	if len(parts) != hashParts {
		return false
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return false
	}

	saltHex, keyHex := parts[1], parts[2]
	if saltHex == "" || keyHex == "" {
		return false
	}

	storedKey, err := hex.DecodeString(keyHex)
	if err != nil || len(storedKey) == 0 {
		return false
	}

	// Деривация с сохраненными параметрами и длиной сохраненного ключа
	derived := pbkdf2.Key([]byte(password), []byte(saltHex), iterations, len(storedKey), sha256.New)

	return subtle.ConstantTimeCompare(derived, storedKey) == 1
}

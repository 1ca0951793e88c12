// Package cli реализует консольные команды клиента журнала сделок.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tradeify/tradeify/internal/client/api"
	"github.com/tradeify/tradeify/internal/client/storage"
)

// Cli держит зависимости консольных команд
type Cli struct {
	apiClient *api.Client
	sessions  storage.SessionStorage
}

// New создает Cli
func New(apiClient *api.Client, sessions storage.SessionStorage) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// requireAuth загружает сохраненную сессию и устанавливает токен
// в API клиент. Возвращает ошибку если сессии нет или она истекла.
func (c *Cli) requireAuth(ctx context.Context) (*storage.AuthData, error) {
	auth, err := c.sessions.GetAuth(ctx)
	if err != nil {
		if err == storage.ErrAuthNotFound {
			return nil, fmt.Errorf("not authenticated. Please run 'tradeify login' first")
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	if time.Now().After(auth.ExpiresAt) {
		return nil, fmt.Errorf("session expired. Please run 'tradeify login' again")
	}

	c.apiClient.SetToken(auth.Token)
	return auth, nil
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println("Tradeify Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tradeify [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --server URL         Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH            Path to local session database (default: tradeify-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register             Register new user")
	fmt.Println("  login                Login to server")
	fmt.Println("  logout               Delete local session")
	fmt.Println("  status               Show authentication status")
	fmt.Println("  list [START] [END]   List trades, optionally filtered by date range")
	fmt.Println("  add                  Add new trade interactively")
	fmt.Println("  delete <id>          Delete trade")
	fmt.Println("  import <file.csv>    Bulk import trades from CSV file")
	fmt.Println("  stats [START] [END]  Show trading statistics")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tradeify register")
	fmt.Println("  tradeify login")
	fmt.Println("  tradeify list 2024-07-01 2024-07-31")
	fmt.Println("  tradeify import trades.csv")
	fmt.Println("  tradeify --server https://example.com stats")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без эха
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Переход на новую строку после ввода пароля
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}

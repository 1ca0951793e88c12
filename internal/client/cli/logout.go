package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/tradeify/tradeify/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	fmt.Println("=== Logout ===")

	// Токены stateless, на сервере отзывать нечего: достаточно
	// удалить локальную сессию
	if err := c.sessions.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			fmt.Println("No active session.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}

	fmt.Println("✓ Logout successful!")
	fmt.Println("Your local session has been deleted.")

	return nil
}

package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Authentication Status ===")
	fmt.Println()

	isAuth, err := c.sessions.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		fmt.Println("Status: Not authenticated")
		fmt.Println()
		fmt.Println("Run 'tradeify login' to authenticate.")
		return nil
	}

	auth, err := c.sessions.GetAuth(ctx)
	if err != nil {
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	remaining := time.Until(auth.ExpiresAt)

	fmt.Println("Status: Authenticated")
	fmt.Printf("Username: %s\n", auth.Username)
	fmt.Printf("Token expires: %s\n", auth.ExpiresAt.Format(time.RFC3339))
	fmt.Printf("Time remaining: %s\n", remaining.Round(time.Second))

	return nil
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/tradeify/tradeify/internal/client/storage"
	"github.com/tradeify/tradeify/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	identifier, err := readInput("Username or email: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		return err
	}

	authData := &storage.AuthData{
		Username:  resp.User.Username,
		UserID:    resp.User.ID,
		Token:     resp.Token,
		ExpiresAt: time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}

	if err := c.sessions.SaveAuth(ctx, authData); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Printf("Username: %s\n", resp.User.Username)
	fmt.Printf("Session expires in: %d seconds\n", resp.ExpiresIn)

	return nil
}

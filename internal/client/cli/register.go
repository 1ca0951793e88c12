package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tradeify/tradeify/internal/validation"
	"github.com/tradeify/tradeify/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Registration ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}

	email, err := readInput("Email (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	balanceStr, err := readInput("Starting account balance (default 0): ")
	if err != nil {
		return fmt.Errorf("failed to read balance: %w", err)
	}
	balance := decimal.Zero
	if balanceStr != "" {
		balance, err = decimal.NewFromString(balanceStr)
		if err != nil {
			return fmt.Errorf("invalid balance: %w", err)
		}
	}

	password, err := readPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	confirmPassword, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("Registering user...")

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
		Email:    email,
		Balance:  balance,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Registration successful!")
	fmt.Printf("User ID: %s\n", resp.User.ID)
	fmt.Printf("Username: %s\n", resp.User.Username)
	fmt.Println()
	fmt.Println("Please run 'tradeify login' to start using the service.")

	return nil
}

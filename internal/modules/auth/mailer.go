package auth

import (
	"context"
	"log"
)

// LogMailer writes reset tokens to the process log. Stands in for a real
// mail provider in development.
type LogMailer struct{}

func (LogMailer) SendPasswordReset(_ context.Context, email, token string) error {
	log.Printf("password_reset email=%s token=%s", email, token)
	return nil
}

package auth

import (
	"context"

	"hotleads/internal/domain"
	"hotleads/internal/repository"
)

// UserRepositoryInterface — only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error
}

// ResetTokenRepositoryInterface — storage for password-reset tokens.
type ResetTokenRepositoryInterface interface {
	Create(ctx context.Context, t *repository.ResetToken) error
	GetByHash(ctx context.Context, hash string) (*repository.ResetToken, error)
	MarkUsed(ctx context.Context, id int64) error
}

// Mailer delivers the password-reset token to the user.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

type jwtService interface {
	GenerateToken(userID int64, email string) (string, error)
}

package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"hotleads/internal/domain"
	"hotleads/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// Service contains all business logic for authentication.
type Service struct {
	users       UserRepositoryInterface
	resetTokens ResetTokenRepositoryInterface
	jwt         jwtService
	mailer      Mailer
	resetPepper string
	resetTTL    time.Duration
}

func NewService(
	users UserRepositoryInterface,
	resetTokens ResetTokenRepositoryInterface,
	jwt jwtService,
	mailer Mailer,
	resetPepper string,
	resetTTL time.Duration,
) *Service {
	return &Service{
		users:       users,
		resetTokens: resetTokens,
		jwt:         jwt,
		mailer:      mailer,
		resetPepper: resetPepper,
		resetTTL:    resetTTL,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	if len(req.Password) < minPasswordLength {
		return nil, "", ErrWeakPassword
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// RequestPasswordReset issues a single-use reset token and mails it. Unknown
// emails are silently ignored so the endpoint cannot be used to probe
// registered accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	raw, hash, err := generateOpaqueToken(s.resetPepper)
	if err != nil {
		return err
	}

	if err := s.resetTokens.Create(ctx, &repository.ResetToken{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(s.resetTTL),
	}); err != nil {
		return err
	}

	return s.mailer.SendPasswordReset(ctx, user.Email, raw)
}

func (s *Service) ResetPassword(ctx context.Context, req ResetConfirmRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	token, err := s.resetTokens.GetByHash(ctx, hashTokenWithPepper(req.Token, s.resetPepper))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if token.UsedAt != nil || !token.ExpiresAt.After(time.Now()) {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.resetTokens.MarkUsed(ctx, token.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	return s.users.UpdatePasswordHash(ctx, token.UserID, string(hash))
}

func generateOpaqueToken(pepper string) (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	hash = hashTokenWithPepper(raw, pepper)
	return raw, hash, nil
}

func hashTokenWithPepper(raw, pepper string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}

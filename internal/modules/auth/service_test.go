package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hotleads/internal/database"
	"hotleads/internal/pkg/jwt"
	"hotleads/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureMailer struct {
	email string
	token string
	sent  int
}

func (m *captureMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.email = email
	m.token = token
	m.sent++
	return nil
}

func setupService(t *testing.T) (*Service, *captureMailer) {
	t.Helper()

	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	mailer := &captureMailer{}
	svc := NewService(
		repository.NewUserRepository(db),
		repository.NewResetTokenRepository(db),
		jwt.New("test-secret", time.Hour),
		mailer,
		"test-pepper",
		time.Hour,
	)
	return svc, mailer
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, RegisterRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	assert.NotEmpty(t, token)

	logged, token2, err := svc.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, token2)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _ := setupService(t)

	user, _, err := svc.Register(context.Background(), RegisterRequest{Email: "  Ana@Example.COM ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "another1"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := setupService(t)

	_, _, err := svc.Register(context.Background(), RegisterRequest{Email: "x@example.com", Password: "12345"})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := setupService(t)

	_, _, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, mailer := setupService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, "ana@example.com"))
	require.Equal(t, 1, mailer.sent)
	assert.Equal(t, "ana@example.com", mailer.email)
	require.NotEmpty(t, mailer.token)

	err = svc.ResetPassword(ctx, ResetConfirmRequest{Token: mailer.token, NewPassword: "brand-new"})
	require.NoError(t, err)

	// Old password no longer works; new one does.
	_, _, err = svc.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	logged, _, err := svc.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "brand-new"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestPasswordResetTokenIsSingleUse(t *testing.T) {
	svc, mailer := setupService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(ctx, "ana@example.com"))

	require.NoError(t, svc.ResetPassword(ctx, ResetConfirmRequest{Token: mailer.token, NewPassword: "brand-new"}))

	err = svc.ResetPassword(ctx, ResetConfirmRequest{Token: mailer.token, NewPassword: "again-new"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	svc, mailer := setupService(t)

	err := svc.RequestPasswordReset(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Zero(t, mailer.sent)
}

func TestPasswordResetRejectsGarbageToken(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.ResetPassword(context.Background(), ResetConfirmRequest{Token: "deadbeef", NewPassword: "brand-new"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestCurrentUserStripsHash(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	got, err := svc.CurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.Empty(t, got.PasswordHash)
}

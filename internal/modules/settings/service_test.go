package settings

import (
	"context"
	"fmt"
	"testing"

	"hotleads/internal/database"
	"hotleads/internal/domain"
	"hotleads/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	calls int
	last  domain.Settings
}

func (p *capturePublisher) PublishSettings(_ int64, s domain.Settings) {
	p.calls++
	p.last = s
}

func setupService(t *testing.T) (*Service, *capturePublisher) {
	t.Helper()

	dsn := fmt.Sprintf("file:settings_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	pub := &capturePublisher{}
	return NewService(repository.NewSettingsRepository(db), pub), pub
}

func TestGetBootstrapsDefaults(t *testing.T) {
	svc, _ := setupService(t)

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)
}

func TestReplaceOverwritesDocument(t *testing.T) {
	svc, pub := setupService(t)
	ctx := context.Background()

	in := domain.DefaultSettings()
	in.Sources = []string{"Feira", "Site"}
	in.Owners = []string{"Eu", "Paula"}

	saved, err := svc.Replace(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Feira", "Site"}, saved.Sources)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	assert.Equal(t, 1, pub.calls)
	assert.Equal(t, saved, pub.last)
}

func TestReplaceNormalizesLists(t *testing.T) {
	svc, _ := setupService(t)

	in := domain.DefaultSettings()
	in.Sources = []string{"  Feira ", "Site", "Feira", "", "Site"}

	saved, err := svc.Replace(context.Background(), 1, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Feira", "Site"}, saved.Sources)
}

func TestReplaceRejectsEmptyList(t *testing.T) {
	svc, pub := setupService(t)

	in := domain.DefaultSettings()
	in.Temperatures = []string{"  ", ""}

	_, err := svc.Replace(context.Background(), 1, in)
	assert.ErrorIs(t, err, ErrEmptyList)
	assert.Zero(t, pub.calls)
}

func TestReplaceIsPerUser(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	in := domain.DefaultSettings()
	in.Owners = []string{"Paula"}
	_, err := svc.Replace(ctx, 1, in)
	require.NoError(t, err)

	other, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), other)
}

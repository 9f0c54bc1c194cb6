package repository

import (
	"context"
	"testing"

	"hotleads/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFirstAccessCreatesDefaults(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t))
	ctx := context.Background()

	got, err := repo.GetOrCreate(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)

	// Second read returns the stored document, not a fresh default.
	again, err := repo.GetOrCreate(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestSettingsReplaceOverwritesDocument(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.GetOrCreate(ctx, 7)
	require.NoError(t, err)

	custom := domain.DefaultSettings()
	custom.Owners = []string{"Eu", "Paula"}
	custom.Products = []string{"Plano Pro"}
	require.NoError(t, repo.Replace(ctx, 7, custom))

	got, err := repo.GetOrCreate(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"Eu", "Paula"}, got.Owners)
	assert.Equal(t, []string{"Plano Pro"}, got.Products)
	// Untouched lists keep their declared order.
	assert.Equal(t, domain.DefaultSettings().Statuses, got.Statuses)
}

func TestSettingsReplaceWithoutPriorDocument(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t))
	ctx := context.Background()

	custom := domain.DefaultSettings()
	custom.Sources = []string{"Feira"}
	require.NoError(t, repo.Replace(ctx, 9, custom))

	got, err := repo.GetOrCreate(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, []string{"Feira"}, got.Sources)
}

func TestSettingsAreScopedPerUser(t *testing.T) {
	repo := NewSettingsRepository(setupTestDB(t))
	ctx := context.Background()

	custom := domain.DefaultSettings()
	custom.Owners = []string{"Time A"}
	require.NoError(t, repo.Replace(ctx, 1, custom))

	other, err := repo.GetOrCreate(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings().Owners, other.Owners)
}

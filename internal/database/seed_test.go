package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaqqye/linkbio/internal/config"
	"github.com/zaqqye/linkbio/internal/models"
	"github.com/zaqqye/linkbio/internal/store"
	"github.com/zaqqye/linkbio/internal/utils"
)

func testConfig(t *testing.T, driver string) *config.Config {
	return &config.Config{
		DBDriver:      driver,
		SQLitePath:    filepath.Join(t.TempDir(), "seed.db"),
		AdminUsername: "admin",
		AdminPassword: "29012012",
	}
}

func openStore(t *testing.T, driver string) (store.Store, *config.Config) {
	t.Helper()
	cfg := testConfig(t, driver)
	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s, cfg
}

func TestSeed_TwiceCreatesNoDuplicates(t *testing.T) {
	for _, driver := range []string{config.DriverMemory, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			s, cfg := openStore(t, driver)
			ctx := context.Background()

			require.NoError(t, Seed(ctx, s, cfg))
			require.NoError(t, Seed(ctx, s, cfg))

			snap, err := s.GetAll(ctx)
			require.NoError(t, err)
			assert.Len(t, snap.Content, len(models.ContentKeys))
			require.Len(t, snap.Links, 2)
			assert.Equal(t, "Instagram", snap.Links[0].Platform)
			assert.Equal(t, "TikTok", snap.Links[1].Platform)
			for _, l := range snap.Links {
				assert.True(t, l.IsActive)
			}

			values := map[string]string{}
			for _, c := range snap.Content {
				values[c.Key] = c.Value
			}
			assert.Equal(t, "My Personal Website", values[models.KeySiteName])

			admin, err := s.FindAdmin(ctx, "admin")
			require.NoError(t, err)
			assert.True(t, utils.CheckPassword(admin.PasswordHash, "29012012"))
			assert.NotEqual(t, "29012012", admin.PasswordHash)
		})
	}
}

func TestSeed_KeepsEdits(t *testing.T) {
	s, cfg := openStore(t, config.DriverMemory)
	ctx := context.Background()
	require.NoError(t, Seed(ctx, s, cfg))

	require.NoError(t, s.UpsertContent(ctx, models.KeySiteName, "Mine"))
	require.NoError(t, s.RemoveLink(ctx, "2"))
	require.NoError(t, Seed(ctx, s, cfg))

	snap, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mine", snap.Content[0].Value)
	require.Len(t, snap.Links, 1)
	assert.Equal(t, "1", snap.Links[0].ID)
}

func TestSeedContent_RestoresMissingDefaults(t *testing.T) {
	s, cfg := openStore(t, config.DriverMemory)
	ctx := context.Background()
	require.NoError(t, Seed(ctx, s, cfg))
	require.NoError(t, s.UpsertContent(ctx, models.KeySiteName, "Mine"))
	require.NoError(t, s.RemoveLink(ctx, "2"))

	require.NoError(t, SeedContent(ctx, s))

	snap, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mine", snap.Content[0].Value)
	assert.Len(t, snap.Links, 2)
}

func TestSeed_RecoversFromInterruptedFirstRun(t *testing.T) {
	for _, driver := range []string{config.DriverMemory, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			s, cfg := openStore(t, driver)
			ctx := context.Background()

			// admin written, defaults never reached
			created, err := SeedAdmin(ctx, s, cfg)
			require.NoError(t, err)
			require.True(t, created)

			require.NoError(t, Seed(ctx, s, cfg))

			snap, err := s.GetAll(ctx)
			require.NoError(t, err)
			assert.Len(t, snap.Content, len(models.DefaultContent()))
			assert.Len(t, snap.Links, len(models.DefaultLinks()))
		})
	}
}

func TestSeedAdmin_ReportsCreation(t *testing.T) {
	s, cfg := openStore(t, config.DriverMemory)
	ctx := context.Background()

	created, err := SeedAdmin(ctx, s, cfg)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = SeedAdmin(ctx, s, cfg)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

package configstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(name string, service arr.ServiceType) Configuration {
	return Configuration{
		Name:        name,
		ServiceType: service,
		Host:        "localhost:8989",
		APIKey:      "secret",
	}
}

func TestOpen_MissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "configs.yaml"))
	require.NoError(t, err)
	assert.Empty(t, s.List())
}

func TestOpen_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::: not yaml"), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestStore_Add(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs.yaml")
	s, err := Open(path)
	require.NoError(t, err)

	cfg, err := s.Add(testConfig("tv", arr.ServiceSonarr))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.ID)
	assert.NotEmpty(t, cfg.WebhookToken)

	t.Run("persists across reopen", func(t *testing.T) {
		reopened, err := Open(path)
		require.NoError(t, err)

		got, err := reopened.Get(cfg.ID)
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	})

	t.Run("rejects invalid records", func(t *testing.T) {
		_, err := s.Add(Configuration{Name: "incomplete"})
		assert.Error(t, err)

		bad := testConfig("oops", arr.ServiceType("lidarr"))
		_, err = s.Add(bad)
		assert.Error(t, err)
	})
}

func TestStore_Lookups(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "configs.yaml"))
	require.NoError(t, err)

	tv, err := s.Add(testConfig("tv", arr.ServiceSonarr))
	require.NoError(t, err)
	movies, err := s.Add(testConfig("movies", arr.ServiceRadarr))
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		got, err := s.Get(tv.ID)
		require.NoError(t, err)
		assert.Equal(t, tv, got)

		_, err = s.Get("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("by name", func(t *testing.T) {
		got, err := s.GetByName("movies")
		require.NoError(t, err)
		assert.Equal(t, movies, got)

		_, err = s.GetByName("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("by token", func(t *testing.T) {
		got, err := s.GetByToken(tv.WebhookToken)
		require.NoError(t, err)
		assert.Equal(t, tv, got)

		_, err = s.GetByToken("")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list sorted by name", func(t *testing.T) {
		all := s.List()
		require.Len(t, all, 2)
		assert.Equal(t, "movies", all[0].Name)
		assert.Equal(t, "tv", all[1].Name)
	})
}

func TestStore_Update(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "configs.yaml"))
	require.NoError(t, err)

	cfg, err := s.Add(testConfig("tv", arr.ServiceSonarr))
	require.NoError(t, err)

	threshold := 80
	updated := testConfig("tv-4k", arr.ServiceSonarr)
	updated.QualityScore = &threshold

	got, err := s.Update(cfg.ID, updated)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, got.ID)
	assert.Equal(t, cfg.WebhookToken, got.WebhookToken)
	assert.Equal(t, "tv-4k", got.Name)
	require.NotNil(t, got.QualityScore)
	assert.Equal(t, 80, *got.QualityScore)

	_, err = s.Update("nope", updated)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "configs.yaml"))
	require.NoError(t, err)

	cfg, err := s.Add(testConfig("tv", arr.ServiceSonarr))
	require.NoError(t, err)

	require.NoError(t, s.Delete(cfg.ID))
	_, err = s.Get(cfg.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(cfg.ID), ErrNotFound)
}

func TestStore_RegenerateToken(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "configs.yaml"))
	require.NoError(t, err)

	cfg, err := s.Add(testConfig("tv", arr.ServiceSonarr))
	require.NoError(t, err)

	token, err := s.RegenerateToken(cfg.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, cfg.WebhookToken, token)

	_, err = s.GetByToken(cfg.WebhookToken)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.GetByToken(token)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, got.ID)

	_, err = s.RegenerateToken("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

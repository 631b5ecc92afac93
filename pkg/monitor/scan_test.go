package monitor

import (
	"context"
	"errors"
	"testing"

	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/Makhuta/arr-monitor-manager/pkg/arr/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestForceUnmonitor_Sonarr(t *testing.T) {
	ctx := context.Background()

	t.Run("collects matches into one bulk call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		rec := &recorder{}
		m := New(staticFactory(client), WithObserver(rec))

		client.EXPECT().Series(gomock.Any()).Return([]arr.Series{
			{ID: 1, Title: "Show A"},
			{ID: 2, Title: "Show B"},
		}, nil)

		// episode without a file is skipped before the gate
		client.EXPECT().EpisodesBySeries(gomock.Any(), int64(1), true).Return([]arr.Episode{
			{ID: 100, Monitored: true, HasFile: false},
		}, nil)

		client.EXPECT().EpisodesBySeries(gomock.Any(), int64(2), true).Return([]arr.Episode{
			{
				ID:        200,
				Monitored: true,
				HasFile:   true,
				EpisodeFile: &arr.EpisodeFile{
					ID:                9,
					CustomFormatScore: 90,
				},
			},
		}, nil)

		client.EXPECT().UnmonitorEpisodes(gomock.Any(), []int64{200}).Return(nil)

		require.NoError(t, m.ForceUnmonitor(ctx, sonarrConfig(80)))
		assert.Equal(t, []int64{200}, rec.unmonitored)
	})

	t.Run("already unmonitored episodes are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		m := New(staticFactory(client), WithObserver(&recorder{}))

		client.EXPECT().Series(gomock.Any()).Return([]arr.Series{{ID: 1}}, nil)
		client.EXPECT().EpisodesBySeries(gomock.Any(), int64(1), true).Return([]arr.Episode{
			{
				ID:        100,
				Monitored: false,
				HasFile:   true,
				EpisodeFile: &arr.EpisodeFile{
					CustomFormatScore: 500,
				},
			},
		}, nil)

		// no bulk call expected
		require.NoError(t, m.ForceUnmonitor(ctx, sonarrConfig(80)))
	})

	t.Run("no matches means no bulk call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		m := New(staticFactory(client), WithObserver(&recorder{}))

		client.EXPECT().Series(gomock.Any()).Return([]arr.Series{}, nil)

		require.NoError(t, m.ForceUnmonitor(ctx, sonarrConfig(80)))
	})

	t.Run("series enumeration failure aborts the scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		m := New(staticFactory(client), WithObserver(&recorder{}))

		client.EXPECT().Series(gomock.Any()).Return(nil, errors.New("connection refused"))

		assert.Error(t, m.ForceUnmonitor(ctx, sonarrConfig(80)))
	})

	t.Run("episode enumeration failure aborts the scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		m := New(staticFactory(client), WithObserver(&recorder{}))

		client.EXPECT().Series(gomock.Any()).Return([]arr.Series{{ID: 1}}, nil)
		client.EXPECT().EpisodesBySeries(gomock.Any(), int64(1), true).Return(nil, errors.New("timeout"))

		assert.Error(t, m.ForceUnmonitor(ctx, sonarrConfig(80)))
	})

	t.Run("bulk call failure fails the scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		m := New(staticFactory(client), WithObserver(&recorder{}))

		client.EXPECT().Series(gomock.Any()).Return([]arr.Series{{ID: 1}}, nil)
		client.EXPECT().EpisodesBySeries(gomock.Any(), int64(1), true).Return([]arr.Episode{
			{ID: 100, Monitored: true, HasFile: true, EpisodeFile: &arr.EpisodeFile{CustomFormatScore: 90}},
		}, nil)
		client.EXPECT().UnmonitorEpisodes(gomock.Any(), []int64{100}).Return(errors.New("boom"))

		assert.Error(t, m.ForceUnmonitor(ctx, sonarrConfig(80)))
	})
}

func TestForceUnmonitor_Radarr(t *testing.T) {
	ctx := context.Background()

	t.Run("matches are unmonitored individually", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		rec := &recorder{}
		m := New(staticFactory(client), WithObserver(rec))

		client.EXPECT().Movies(gomock.Any()).Return([]arr.Movie{
			{ID: 1, Monitored: true, MovieFileID: 11},
			{ID: 2, Monitored: true, MovieFileID: 12},
			{ID: 3, Monitored: true, MovieFileID: 0},   // never imported
			{ID: 4, Monitored: false, MovieFileID: 14}, // already unmonitored
		}, nil)

		client.EXPECT().MovieFile(gomock.Any(), int64(11)).Return(arr.MovieFile{ID: 11, CustomFormatScore: 95}, nil)
		client.EXPECT().MovieFile(gomock.Any(), int64(12)).Return(arr.MovieFile{ID: 12, CustomFormatScore: 10}, nil)
		client.EXPECT().UnmonitorMovie(gomock.Any(), int64(1)).Return(nil)

		require.NoError(t, m.ForceUnmonitor(ctx, radarrConfig(80)))
		assert.Equal(t, []int64{1}, rec.unmonitored)
	})

	t.Run("file fetch failure skips the movie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		rec := &recorder{}
		m := New(staticFactory(client), WithObserver(rec))

		client.EXPECT().Movies(gomock.Any()).Return([]arr.Movie{
			{ID: 1, Monitored: true, MovieFileID: 11},
			{ID: 2, Monitored: true, MovieFileID: 12},
		}, nil)

		client.EXPECT().MovieFile(gomock.Any(), int64(11)).Return(arr.MovieFile{}, errors.New("timeout"))
		client.EXPECT().MovieFile(gomock.Any(), int64(12)).Return(arr.MovieFile{ID: 12, CustomFormatScore: 95}, nil)
		client.EXPECT().UnmonitorMovie(gomock.Any(), int64(2)).Return(nil)

		require.NoError(t, m.ForceUnmonitor(ctx, radarrConfig(80)), "scan still reports overall success")
		assert.Equal(t, []int64{2}, rec.unmonitored)
	})

	t.Run("unmonitor failure skips to the next movie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		rec := &recorder{}
		m := New(staticFactory(client), WithObserver(rec))

		client.EXPECT().Movies(gomock.Any()).Return([]arr.Movie{
			{ID: 1, Monitored: true, MovieFileID: 11},
			{ID: 2, Monitored: true, MovieFileID: 12},
		}, nil)

		client.EXPECT().MovieFile(gomock.Any(), int64(11)).Return(arr.MovieFile{CustomFormatScore: 95}, nil)
		client.EXPECT().MovieFile(gomock.Any(), int64(12)).Return(arr.MovieFile{CustomFormatScore: 95}, nil)
		client.EXPECT().UnmonitorMovie(gomock.Any(), int64(1)).Return(errors.New("boom"))
		client.EXPECT().UnmonitorMovie(gomock.Any(), int64(2)).Return(nil)

		require.NoError(t, m.ForceUnmonitor(ctx, radarrConfig(80)))
		assert.Equal(t, []int64{1}, rec.failed)
		assert.Equal(t, []int64{2}, rec.unmonitored)
	})

	t.Run("movie enumeration failure aborts the scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		m := New(staticFactory(client), WithObserver(&recorder{}))

		client.EXPECT().Movies(gomock.Any()).Return(nil, errors.New("connection refused"))

		assert.Error(t, m.ForceUnmonitor(ctx, radarrConfig(80)))
	})
}

func TestForceUnmonitor_UnknownServiceType(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	m := New(staticFactory(client))

	cfg := sonarrConfig(80)
	cfg.ServiceType = "whisparr"

	assert.Error(t, m.ForceUnmonitor(context.Background(), cfg))
}

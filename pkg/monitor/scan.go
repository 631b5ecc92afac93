package monitor

import (
	"context"
	"fmt"

	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/Makhuta/arr-monitor-manager/pkg/configstore"
	"github.com/Makhuta/arr-monitor-manager/pkg/logger"
	"github.com/dustin/go-humanize"
)

// ForceUnmonitor enumerates the configured service's whole library, gates
// every imported item and unmonitors the matches. Enumeration failures abort
// the scan; per-item failures are reported and skipped.
func (m Monitor) ForceUnmonitor(ctx context.Context, cfg configstore.Configuration) error {
	switch cfg.ServiceType {
	case arr.ServiceSonarr:
		return m.forceUnmonitorSonarr(ctx, cfg)
	case arr.ServiceRadarr:
		return m.forceUnmonitorRadarr(ctx, cfg)
	default:
		return fmt.Errorf("configuration %q has unknown service type %q", cfg.Name, cfg.ServiceType)
	}
}

// forceUnmonitorSonarr walks every episode of every series. Matching episode
// ids are collected and flipped in a single bulk call at the end; already
// unmonitored episodes and episodes without a file are skipped, which also
// makes a repeated scan a no-op.
func (m Monitor) forceUnmonitorSonarr(ctx context.Context, cfg configstore.Configuration) error {
	log := logger.FromCtx(ctx)
	client := m.newClient(cfg)

	series, err := client.Series(ctx)
	if err != nil {
		return fmt.Errorf("listing series: %w", err)
	}

	var toUnmonitor []int64
	for _, s := range series {
		episodes, err := client.EpisodesBySeries(ctx, s.ID, true)
		if err != nil {
			return fmt.Errorf("listing episodes of series %d: %w", s.ID, err)
		}

		for _, ep := range episodes {
			if !ep.Monitored || !ep.HasFile || ep.EpisodeFile == nil {
				continue
			}

			quality := QualityFromFormats(ep.EpisodeFile.CustomFormatScore, ep.EpisodeFile.CustomFormats)
			unmonitor := ShouldUnmonitor(quality, cfg)
			m.observer.GateEvaluated(ctx, cfg, quality, unmonitor)
			if !unmonitor {
				continue
			}

			log.Debugw("episode matched quality gate",
				"series", s.Title,
				"episode", ep.ID,
				"size", humanize.Bytes(uint64(ep.EpisodeFile.Size)),
			)
			toUnmonitor = append(toUnmonitor, ep.ID)
		}
	}

	if len(toUnmonitor) == 0 {
		log.Infow("scan matched no episodes", "config", cfg.Name)
		return nil
	}

	if err := client.UnmonitorEpisodes(ctx, toUnmonitor); err != nil {
		return fmt.Errorf("bulk unmonitor of %d episodes: %w", len(toUnmonitor), err)
	}

	for _, id := range toUnmonitor {
		m.observer.TargetUnmonitored(ctx, cfg, id)
	}

	return nil
}

// forceUnmonitorRadarr walks every movie. Radarr lacks a bulk monitor
// mutation, so each matching movie is unmonitored individually as it is
// found, and a failed file fetch or unmonitor call only skips that movie.
func (m Monitor) forceUnmonitorRadarr(ctx context.Context, cfg configstore.Configuration) error {
	log := logger.FromCtx(ctx)
	client := m.newClient(cfg)

	movies, err := client.Movies(ctx)
	if err != nil {
		return fmt.Errorf("listing movies: %w", err)
	}

	for _, movie := range movies {
		if movie.MovieFileID == 0 || !movie.Monitored {
			continue
		}

		file, err := client.MovieFile(ctx, movie.MovieFileID)
		if err != nil {
			log.Warnw("skipping movie, file fetch failed", "config", cfg.Name, "movie", movie.ID, "error", err)
			continue
		}

		quality := QualityFromFormats(file.CustomFormatScore, file.CustomFormats)
		unmonitor := ShouldUnmonitor(quality, cfg)
		m.observer.GateEvaluated(ctx, cfg, quality, unmonitor)
		if !unmonitor {
			continue
		}

		log.Debugw("movie matched quality gate",
			"movie", movie.Title,
			"id", movie.ID,
			"size", humanize.Bytes(uint64(file.Size)),
		)

		if err := client.UnmonitorMovie(ctx, movie.ID); err != nil {
			m.observer.TargetFailed(ctx, cfg, movie.ID, err)
			continue
		}
		m.observer.TargetUnmonitored(ctx, cfg, movie.ID)
	}

	return nil
}

package monitor

import (
	"context"
	"fmt"

	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/Makhuta/arr-monitor-manager/pkg/configstore"
	"github.com/Makhuta/arr-monitor-manager/pkg/logger"
)

// EventTypeDownload is the webhook event emitted when a download finishes
// importing. All other event types are acknowledged and ignored.
const EventTypeDownload = "Download"

// WebhookPayload is the subset of the Sonarr/Radarr webhook body the
// orchestrator reads. Sonarr events carry episodes, Radarr events a movie.
type WebhookPayload struct {
	EventType        string            `json:"eventType"`
	InstanceName     string            `json:"instanceName"`
	Episodes         []WebhookEpisode  `json:"episodes,omitempty"`
	Movie            *WebhookMovie     `json:"movie,omitempty"`
	CustomFormatInfo *CustomFormatInfo `json:"customFormatInfo,omitempty"`
}

type WebhookEpisode struct {
	ID            int64  `json:"id"`
	SeasonNumber  int32  `json:"seasonNumber"`
	EpisodeNumber int32  `json:"episodeNumber"`
	Title         string `json:"title"`
}

type WebhookMovie struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Year  int32  `json:"year"`
}

// CustomFormatInfo is the webhook's quality block.
type CustomFormatInfo struct {
	CustomFormats     []arr.CustomFormat `json:"customFormats"`
	CustomFormatScore int                `json:"customFormatScore"`
}

// Quality normalizes the webhook quality block. A nil block means no formats
// matched and a score of zero.
func (i *CustomFormatInfo) Quality() QualityInfo {
	if i == nil {
		return QualityInfo{}
	}
	return QualityFromFormats(i.CustomFormatScore, i.CustomFormats)
}

// ProcessWebhook applies the quality gate to a download-completed webhook
// and unmonitors the affected items when the gate matches. The quality block
// is shared by every item in the payload, so the gate is evaluated once.
// Individual unmonitor failures are reported to the observer and do not
// abort the remaining items or fail the orchestration.
func (m Monitor) ProcessWebhook(ctx context.Context, cfg configstore.Configuration, payload WebhookPayload) error {
	log := logger.FromCtx(ctx)

	if !cfg.ServiceType.Valid() {
		return fmt.Errorf("configuration %q has unknown service type %q", cfg.Name, cfg.ServiceType)
	}

	if payload.EventType != EventTypeDownload {
		log.Debugw("ignoring webhook event", "config", cfg.Name, "eventType", payload.EventType)
		return nil
	}

	targets := webhookTargets(ctx, cfg, payload)
	if len(targets) == 0 {
		log.Warnw("download webhook carried no usable item ids", "config", cfg.Name)
		return nil
	}

	quality := payload.CustomFormatInfo.Quality()
	unmonitor := ShouldUnmonitor(quality, cfg)
	m.observer.GateEvaluated(ctx, cfg, quality, unmonitor)
	if !unmonitor {
		return nil
	}

	client := m.newClient(cfg)
	for _, id := range targets {
		var err error
		switch cfg.ServiceType {
		case arr.ServiceSonarr:
			err = client.UnmonitorEpisode(ctx, id)
		case arr.ServiceRadarr:
			err = client.UnmonitorMovie(ctx, id)
		}

		if err != nil {
			m.observer.TargetFailed(ctx, cfg, id, err)
			continue
		}
		m.observer.TargetUnmonitored(ctx, cfg, id)
	}

	return nil
}

// webhookTargets extracts the affected item ids from the payload. Items with
// a missing id are skipped with a warning rather than failing the call.
func webhookTargets(ctx context.Context, cfg configstore.Configuration, payload WebhookPayload) []int64 {
	log := logger.FromCtx(ctx)

	switch cfg.ServiceType {
	case arr.ServiceSonarr:
		ids := make([]int64, 0, len(payload.Episodes))
		for _, ep := range payload.Episodes {
			if ep.ID == 0 {
				log.Warnw("webhook episode without id", "config", cfg.Name, "title", ep.Title)
				continue
			}
			ids = append(ids, ep.ID)
		}
		return ids
	case arr.ServiceRadarr:
		if payload.Movie == nil || payload.Movie.ID == 0 {
			return nil
		}
		return []int64{payload.Movie.ID}
	}

	return nil
}

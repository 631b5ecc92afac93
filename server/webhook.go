package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/Makhuta/arr-monitor-manager/pkg/logger"
	"github.com/Makhuta/arr-monitor-manager/pkg/monitor"
	"go.uber.org/zap"
)

// WebhookTokenHeader carries the per-configuration secret identifying which
// stored configuration issued an inbound webhook call.
const WebhookTokenHeader = "X-Webhook-Token"

// Webhook handles inbound Sonarr/Radarr webhook posts. The bearer token must
// resolve to a stored configuration of the matching service type before the
// payload reaches the orchestrator. Once the payload parses, the response is
// always a definitive acknowledgment.
func (s Server) Webhook(service arr.ServiceType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		token := r.Header.Get(WebhookTokenHeader)
		if token == "" {
			log.Warn("webhook received without token", zap.String("service", service.String()))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		cfg, err := s.store.GetByToken(token)
		if err != nil || cfg.ServiceType != service {
			log.Warn("webhook received with invalid token", zap.String("service", service.String()))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var payload monitor.WebhookPayload
		if err := json.Unmarshal(b, &payload); err != nil {
			log.Debug("invalid webhook body", zap.ByteString("body", b))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		log.Info("received webhook",
			zap.String("config", cfg.Name),
			zap.String("eventType", payload.EventType),
		)

		if err := s.monitor.ProcessWebhook(r.Context(), cfg, payload); err != nil {
			log.Error("failed to process webhook", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

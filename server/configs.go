package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/Makhuta/arr-monitor-manager/pkg/configstore"
	"github.com/Makhuta/arr-monitor-manager/pkg/logger"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ListConfigs lists all stored configurations
func (s Server) ListConfigs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{Response: s.store.List()})
	}
}

// GetConfig returns a single configuration by id or name
func (s Server) GetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := s.lookupConfig(mux.Vars(r)["id"])
		if err != nil {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: cfg})
	}
}

// CreateConfig validates a new configuration, verifies the manager endpoint
// is reachable with the given credentials and stores it. The response carries
// the generated webhook token.
func (s Server) CreateConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		cfg, ok := decodeConfig(w, r)
		if !ok {
			return
		}

		client := s.newClient(cfg)
		if err := client.TestConnection(r.Context()); err != nil {
			log.Warn("connection test failed", zap.String("host", cfg.Host), zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		stored, err := s.store.Add(cfg)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		log.Info("added configuration",
			zap.String("name", stored.Name),
			zap.String("service", stored.ServiceType.String()),
		)
		writeResponse(w, http.StatusCreated, GenericResponse{Response: stored})
	}
}

// UpdateConfig replaces a stored configuration
func (s Server) UpdateConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, ok := decodeConfig(w, r)
		if !ok {
			return
		}

		stored, err := s.store.Update(mux.Vars(r)["id"], cfg)
		if err != nil {
			if errors.Is(err, configstore.ErrNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: stored})
	}
}

// DeleteConfig removes a stored configuration
func (s Server) DeleteConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id := mux.Vars(r)["id"]
		if err := s.store.Delete(id); err != nil {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}

		log.Info("deleted configuration", zap.String("id", id))
		writeResponse(w, http.StatusOK, GenericResponse{Response: "deleted"})
	}
}

// RegenerateToken replaces the webhook token of a configuration and returns
// the new token, invalidating the previous one.
func (s Server) RegenerateToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id := mux.Vars(r)["id"]
		token, err := s.store.RegenerateToken(id)
		if err != nil {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}

		log.Info("regenerated webhook token", zap.String("id", id))
		writeResponse(w, http.StatusOK, GenericResponse{Response: token})
	}
}

// ForceScan runs the batch force-unmonitor scan for one configuration. The
// result is an aggregate success or failure, not per-item detail.
func (s Server) ForceScan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		cfg, err := s.lookupConfig(mux.Vars(r)["id"])
		if err != nil {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}

		log.Info("starting force-unmonitor scan",
			zap.String("config", cfg.Name),
			zap.String("service", cfg.ServiceType.String()),
		)

		if err := s.monitor.ForceUnmonitor(r.Context(), cfg); err != nil {
			log.Error("force-unmonitor scan failed", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

func decodeConfig(w http.ResponseWriter, r *http.Request) (configstore.Configuration, bool) {
	log := logger.FromCtx(r.Context())

	var cfg configstore.Configuration
	b, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("invalid request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return cfg, false
	}

	if err := json.Unmarshal(b, &cfg); err != nil {
		log.Debug("invalid request body", zap.ByteString("body", b))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return cfg, false
	}

	service, err := arr.ParseServiceType(string(cfg.ServiceType))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return cfg, false
	}
	cfg.ServiceType = service

	return cfg, true
}

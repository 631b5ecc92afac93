package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/Makhuta/arr-monitor-manager/pkg/configstore"
	"github.com/Makhuta/arr-monitor-manager/pkg/monitor"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// Orchestrator runs the quality-gate flows against a configuration.
type Orchestrator interface {
	ProcessWebhook(ctx context.Context, cfg configstore.Configuration, payload monitor.WebhookPayload) error
	ForceUnmonitor(ctx context.Context, cfg configstore.Configuration) error
}

// Server houses all dependencies for the monitor manager to serve requests:
// logger, configuration store, orchestrator and the media client factory.
type Server struct {
	baseLogger *zap.SugaredLogger
	store      *configstore.Store
	monitor    Orchestrator
	newClient  monitor.ClientFactory
}

// New creates a new monitor manager server
func New(logger *zap.SugaredLogger, store *configstore.Store, orchestrator Orchestrator, newClient monitor.ClientFactory) Server {
	return Server{
		baseLogger: logger,
		store:      store,
		monitor:    orchestrator,
		newClient:  newClient,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Handler builds the full route tree.
func (s Server) Handler() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	rtr.HandleFunc("/webhook/sonarr", s.Webhook(arr.ServiceSonarr)).Methods(http.MethodPost)
	rtr.HandleFunc("/webhook/radarr", s.Webhook(arr.ServiceRadarr)).Methods(http.MethodPost)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/configs", s.ListConfigs()).Methods(http.MethodGet)
	v1.HandleFunc("/configs", s.CreateConfig()).Methods(http.MethodPost)
	v1.HandleFunc("/configs/{id}", s.GetConfig()).Methods(http.MethodGet)
	v1.HandleFunc("/configs/{id}", s.UpdateConfig()).Methods(http.MethodPut)
	v1.HandleFunc("/configs/{id}", s.DeleteConfig()).Methods(http.MethodDelete)
	v1.HandleFunc("/configs/{id}/token", s.RegenerateToken()).Methods(http.MethodPost)
	v1.HandleFunc("/configs/{id}/scan", s.ForceScan()).Methods(http.MethodPost)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(),
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// lookupConfig resolves a route id as a config id first and a config name
// second, so configs can be addressed by either.
func (s Server) lookupConfig(id string) (configstore.Configuration, error) {
	cfg, err := s.store.Get(id)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, configstore.ErrNotFound) {
		return s.store.GetByName(id)
	}
	return configstore.Configuration{}, err
}

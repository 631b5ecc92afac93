// Package configstore persists named Sonarr/Radarr configurations to a flat
// YAML file. Every mutation rewrites the whole file.
package configstore

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("configuration not found")

// Configuration ties one manager endpoint to its quality-gate thresholds.
// WebhookToken authenticates inbound webhook calls and is distinct from the
// APIKey used for outbound calls.
type Configuration struct {
	ID           string          `yaml:"id" json:"id"`
	Name         string          `yaml:"name" json:"name" validate:"required"`
	ServiceType  arr.ServiceType `yaml:"serviceType" json:"serviceType" validate:"required,oneof=sonarr radarr"`
	Host         string          `yaml:"host" json:"host" validate:"required"`
	APIKey       string          `yaml:"apiKey" json:"apiKey" validate:"required"`
	WebhookToken string          `yaml:"webhookToken" json:"webhookToken"`
	QualityScore *int            `yaml:"qualityScore,omitempty" json:"qualityScore,omitempty"`
	FormatName   string          `yaml:"formatName,omitempty" json:"formatName,omitempty"`
}

// Store is a file-backed collection of configurations keyed by id.
type Store struct {
	mu       sync.Mutex
	path     string
	configs  map[string]Configuration
	validate *validator.Validate
}

// Open loads the store from path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{
		path:     path,
		configs:  make(map[string]Configuration),
		validate: validator.New(),
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading config store: %w", err)
	}

	if err := yaml.Unmarshal(b, &s.configs); err != nil {
		return nil, fmt.Errorf("parsing config store: %w", err)
	}
	if s.configs == nil {
		s.configs = make(map[string]Configuration)
	}

	return s, nil
}

func (s *Store) save() error {
	b, err := yaml.Marshal(s.configs)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, b, 0o600)
}

// Add stores a new configuration, assigning it an id and a webhook token.
// The stored configuration is returned so callers can surface the token.
func (s *Store) Add(cfg Configuration) (Configuration, error) {
	if err := s.validate.Struct(cfg); err != nil {
		return Configuration{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg.ID = uuid.New().String()
	cfg.WebhookToken = uuid.New().String()
	s.configs[cfg.ID] = cfg

	if err := s.save(); err != nil {
		delete(s.configs, cfg.ID)
		return Configuration{}, err
	}

	return cfg, nil
}

// Update replaces the stored configuration with the given id. The id and
// webhook token of the stored record are preserved.
func (s *Store) Update(id string, cfg Configuration) (Configuration, error) {
	if err := s.validate.Struct(cfg); err != nil {
		return Configuration{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.configs[id]
	if !ok {
		return Configuration{}, ErrNotFound
	}

	cfg.ID = prev.ID
	cfg.WebhookToken = prev.WebhookToken
	s.configs[id] = cfg

	if err := s.save(); err != nil {
		s.configs[id] = prev
		return Configuration{}, err
	}

	return cfg, nil
}

// Delete removes a configuration by id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.configs[id]
	if !ok {
		return ErrNotFound
	}

	delete(s.configs, id)
	if err := s.save(); err != nil {
		s.configs[id] = prev
		return err
	}

	return nil
}

// Get returns a configuration by id.
func (s *Store) Get(id string) (Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.configs[id]
	if !ok {
		return Configuration{}, ErrNotFound
	}

	return cfg, nil
}

// GetByName returns the first configuration with the given name.
func (s *Store) GetByName(name string) (Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cfg := range s.configs {
		if cfg.Name == name {
			return cfg, nil
		}
	}

	return Configuration{}, ErrNotFound
}

// GetByToken returns the configuration owning the given webhook token.
func (s *Store) GetByToken(token string) (Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		return Configuration{}, ErrNotFound
	}

	for _, cfg := range s.configs {
		if cfg.WebhookToken == token {
			return cfg, nil
		}
	}

	return Configuration{}, ErrNotFound
}

// List returns all configurations sorted by name.
func (s *Store) List() []Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs := make([]Configuration, 0, len(s.configs))
	for _, cfg := range s.configs {
		configs = append(configs, cfg)
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})

	return configs
}

// RegenerateToken replaces the webhook token of a configuration, invalidating
// the previous one.
func (s *Store) RegenerateToken(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.configs[id]
	if !ok {
		return "", ErrNotFound
	}

	prev := cfg.WebhookToken
	cfg.WebhookToken = uuid.New().String()
	s.configs[id] = cfg

	if err := s.save(); err != nil {
		cfg.WebhookToken = prev
		s.configs[id] = cfg
		return "", err
	}

	return cfg.WebhookToken, nil
}

package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server Server `json:"server" yaml:"server" mapstructure:"server"`
	Store  Store  `json:"store" yaml:"store" mapstructure:"store"`
	Client Client `json:"client" yaml:"client" mapstructure:"client"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Store configuration points at the flat file holding service configurations
type Store struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Client houses configuration shared by all outbound Sonarr/Radarr clients
type Client struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

package config

import (
	"errors"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultServerBaseURL = "http://127.0.0.1:8000"

// defaultDurationEstimate is the provisional audio duration in seconds used
// until the stream's real metadata is probed.
const defaultDurationEstimate = 600.0

type CoreConfig struct {
	Server  ServerConfig  `toml:"server"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	BaseURL string `toml:"base_url"`
}

type AudioConfig struct {
	Command          string  `toml:"command"`
	DurationEstimate float64 `toml:"duration_estimate"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

func DefaultCoreConfig() CoreConfig {
	return CoreConfig{
		Server: ServerConfig{
			BaseURL: defaultServerBaseURL,
		},
		Audio: AudioConfig{
			DurationEstimate: defaultDurationEstimate,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func LoadCoreConfig() (CoreConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return CoreConfig{}, err
	}
	return loadCoreConfigFromPath(path)
}

func (c CoreConfig) ServerBaseURL() string {
	base := strings.TrimSpace(c.Server.BaseURL)
	if base == "" {
		return defaultServerBaseURL
	}
	return strings.TrimRight(base, "/")
}

func (c CoreConfig) AudioCommand() string {
	return strings.TrimSpace(c.Audio.Command)
}

func (c CoreConfig) AudioDurationEstimate() float64 {
	if c.Audio.DurationEstimate <= 0 {
		return defaultDurationEstimate
	}
	return c.Audio.DurationEstimate
}

func (c CoreConfig) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

func loadCoreConfigFromPath(path string) (CoreConfig, error) {
	cfg := DefaultCoreConfig()
	if err := readTOML(path, &cfg); err != nil {
		return CoreConfig{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

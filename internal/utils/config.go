package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config struct holds application configuration
type Config struct {
	SampleRate int     `yaml:"sample_rate"`
	Decay      float64 `yaml:"decay"`
	Melody     string  `yaml:"melody"`
	NoteMs     int     `yaml:"note_ms"`
	FrameSize  int     `yaml:"frame_size"`
	Output     string  `yaml:"output"`
	LogFile    string  `yaml:"log_file"`
	Debug      bool    `yaml:"debug"`
	Deque      string  `yaml:"deque"`
	Port       int     `yaml:"port"`
}

// Supported values of Config.Deque
const (
	DequeArray     = "array"
	DequeLinked    = "linked"
	DequeAveraging = "averaging"
)

var (
	configInstance *Config   // Singleton configInstance
	configOnce     sync.Once // Ensures thread-safe initialization
)

// HomeDir returns the user's home directory, or the working directory when
// it cannot be determined.
func HomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return homeDir
}

// DefaultConfigPath returns the location of the config file.
func DefaultConfigPath() string {
	return filepath.Join(HomeDir(), ".deques", "deques.yaml")
}

// LoadConfig initializes the singleton configInstance. Later calls return the
// instance loaded first.
func LoadConfig(filename string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		configInstance, err = loadConfigFromFile(filename)
	})
	if err != nil {
		return nil, err
	}
	return configInstance, nil
}

// loadConfigFromFile reads and parses the config file
func loadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("config %s not found, using defaults", filename)
			return getDefaultConfig(), nil
		}
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	if configInstance == nil {
		return nil, errors.New("Config not initialized. Call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	if config.SampleRate <= 0 {
		config.SampleRate = 44100
	}
	if config.Decay <= 0 || config.Decay > 1 {
		config.Decay = 0.996
	}
	if config.Melody == "" {
		config.Melody = "q2we4r5ty7u8i"
	}
	if config.NoteMs <= 0 {
		config.NoteMs = 250
	}
	if config.FrameSize <= 0 {
		config.FrameSize = 4096
	}
	if config.Output == "" {
		config.Output = filepath.Join(HomeDir(), ".deques", "samples.dat")
	}
	if config.Port <= 0 {
		config.Port = 6379
	}
	if config.Deque != DequeLinked && config.Deque != DequeAveraging {
		config.Deque = DequeArray
	}
}

// SamplesPerNote converts NoteMs into a sample count at SampleRate.
func (c *Config) SamplesPerNote() int {
	return c.SampleRate * c.NoteMs / 1000
}

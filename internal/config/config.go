// Package config holds the aescrypt settings, read from a YAML file and
// overridden by command line flags.
package config

import (
	"encoding/hex"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"jayconrod.com/aesmodes/crypto"
	"jayconrod.com/aesmodes/internal/codec"
)

type Config struct {
	Mode crypto.Mode `yaml:"mode"`

	// Key is the key as literal text, like "YELLOW SUBMARINE". KeyHex takes
	// precedence when both are set.
	Key    string `yaml:"key"`
	KeyHex string `yaml:"key-hex"`

	// IV is hex. Empty means the zero block.
	IV string `yaml:"iv"`

	Decrypt      bool         `yaml:"decrypt"`
	InputFormat  codec.Format `yaml:"input-format"`
	OutputFormat codec.Format `yaml:"output-format"`
	LogLevel     string       `yaml:"log-level"`
}

// Default returns the settings used when no file or flag sets a value.
func Default() *Config {
	return &Config{
		Mode:         crypto.ECB,
		InputFormat:  codec.Raw,
		OutputFormat: codec.Raw,
		LogLevel:     "info",
	}
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded config from %s: mode %v, decrypt %t", path, cfg.Mode, cfg.Decrypt)
	return cfg, nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// KeyBytes returns the key. It does not check the length; the engine does.
func (c *Config) KeyBytes() ([]byte, error) {
	if c.KeyHex != "" {
		key, err := hex.DecodeString(c.KeyHex)
		if err != nil {
			return nil, fmt.Errorf("key-hex: %w", err)
		}
		return key, nil
	}
	if c.Key == "" {
		return nil, fmt.Errorf("no key given")
	}
	return []byte(c.Key), nil
}

// IVBytes returns the IV, or nil if none is set.
func (c *Config) IVBytes() ([]byte, error) {
	if c.IV == "" {
		return nil, nil
	}
	iv, err := hex.DecodeString(c.IV)
	if err != nil {
		return nil, fmt.Errorf("iv: %w", err)
	}
	return iv, nil
}

// Validate checks the settings so that a bad key or IV is reported as an
// error instead of reaching the engine, which panics on them.
func (c *Config) Validate() error {
	key, err := c.KeyBytes()
	if err != nil {
		return err
	}
	if len(key) != crypto.KeySize {
		return fmt.Errorf("key must be %d bytes, got %d", crypto.KeySize, len(key))
	}
	iv, err := c.IVBytes()
	if err != nil {
		return err
	}
	if iv != nil {
		ok := len(iv) == crypto.BlockSize || (c.Mode == crypto.CTR && len(iv) == crypto.NonceSize)
		if !ok {
			return fmt.Errorf("iv must be %d bytes for %v, got %d", crypto.BlockSize, c.Mode, len(iv))
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the logrus level named by LogLevel.
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("log-level: %w", err)
	}
	return level, nil
}

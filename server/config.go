package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultListen is the listen address used when the config does not set one.
const DefaultListen = ":8002"

// Config carries the server settings read from YAML:
//
//	listen: ":8002"
//	map: /var/lib/streetmap/city.json
type Config struct {
	// Listen is the TCP address the HTTP server binds.
	Listen string `yaml:"listen"`

	// MapPath is the JSON map document to load at startup.
	MapPath string `yaml:"map"`
}

// DefaultConfig returns a config with the default listen address and no
// map path.
func DefaultConfig() Config {
	return Config{Listen: DefaultListen}
}

// LoadConfig reads a YAML config file, filling unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("server: read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("server: parse config %s: %w", path, err)
	}
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}

	return cfg, nil
}

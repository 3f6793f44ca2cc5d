// pkg/config/config.go
package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds sysfacts configuration
type Config struct {
	// Interface is the network interface queried by the network readout.
	Interface string `yaml:"interface"`

	// Hidden lists readout names the CLI should not render.
	Hidden []string `yaml:"hidden"`

	// LongShell reports the shell by its full path instead of its name.
	LongShell bool `yaml:"long_shell"`

	Debug bool `yaml:"debug"`

	// Logger receives debug output when Debug is set. Not serialized.
	Logger *log.Logger `yaml:"-"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Interface: defaultInterface(),
		Debug:     false,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "sysfacts", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Interface == "" {
		cfg.Interface = defaultInterface()
	}
	return &cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "sysfacts", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// defaultInterface picks the first interface that is up and not a
// loopback, so a fresh config queries something meaningful.
func defaultInterface() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		return iface.Name
	}
	return ""
}

// IsHidden reports whether the named readout is hidden by configuration.
func (c *Config) IsHidden(name string) bool {
	for _, hidden := range c.Hidden {
		if hidden == name {
			return true
		}
	}
	return false
}

// Debugf logs through the configured logger when debugging is enabled.
func (c *Config) Debugf(format string, args ...any) {
	if c.Debug && c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

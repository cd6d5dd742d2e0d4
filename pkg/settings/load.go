package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultServerMode = "release"
	defaultServerHost = "127.0.0.1"
	defaultLogLevel   = "info"
	defaultMaxSize    = 100 // megabytes
	defaultMaxBackups = 3
	defaultMaxAge     = 28 // days
)

var validate = validator.New()

// Load reads a YAML config file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	cfg.setDefaultConfig()

	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return cfg, nil
}

// setDefaultConfig fills unset fields. TimedCache is left alone: the cache
// resolves its own defaults.
func (c *Config) setDefaultConfig() {
	if c.Server.Mode == "" {
		c.Server.Mode = defaultServerMode
	}
	if c.Server.Host == "" {
		c.Server.Host = defaultServerHost
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaultLogLevel
	}
	if c.Logger.MaxSize == 0 {
		c.Logger.MaxSize = defaultMaxSize
	}
	if c.Logger.MaxBackups == 0 {
		c.Logger.MaxBackups = defaultMaxBackups
	}
	if c.Logger.MaxAge == 0 {
		c.Logger.MaxAge = defaultMaxAge
	}
}

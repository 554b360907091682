// Package config handles loading lists.toml configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/amonks/lists/internal/paths"
	"github.com/amonks/lists/internal/validation"
)

// ProjectFileName is the per-directory config file name.
const ProjectFileName = "lists.toml"

// Defaults applied after merging.
const (
	DefaultPort          = 4567
	DefaultCookieName    = "lists_session"
	DefaultIdleTimeout   = 24 * time.Hour
	DefaultSweepInterval = 5 * time.Minute
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
)

var (
	// ErrInvalidLogLevel reports an unknown log.level.
	ErrInvalidLogLevel = errors.New("invalid log.level")
	// ErrInvalidLogFormat reports an unknown log.format.
	ErrInvalidLogFormat = errors.New("invalid log.format")
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "console"}
)

// Config represents the lists.toml configuration file.
type Config struct {
	Server  Server  `toml:"server"`
	Session Session `toml:"session"`
	Log     Log     `toml:"log"`
}

// Server contains HTTP listener configuration.
type Server struct {
	// Addr is a full listen address. It takes precedence over Port.
	Addr string `toml:"addr"`

	// Port is used with 127.0.0.1 when Addr is empty.
	Port int `toml:"port"`
}

// Session contains session transport and lifecycle configuration.
type Session struct {
	// CookieName is the name of the cookie carrying the session id.
	CookieName string `toml:"cookie-name"`

	// Secret signs session cookies. A random secret is generated per process
	// when empty, which ends all sessions on restart.
	Secret string `toml:"secret"`

	// IdleTimeout ends sessions unused for this long.
	IdleTimeout time.Duration `toml:"idle-timeout"`

	// SweepInterval is how often idle sessions are collected.
	SweepInterval time.Duration `toml:"sweep-interval"`
}

// Log contains logger configuration.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// Format is json or console.
	Format string `toml:"format"`
}

// Load loads configuration from dir and the global config file, applying
// defaults. Returns the defaults if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return load(globalPath, filepath.Join(dir, ProjectFileName), false)
}

// LoadFile loads configuration from an explicit path merged over the global
// config file. The file must exist.
func LoadFile(path string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return load(globalPath, path, true)
}

func load(globalPath, projectPath string, requireProject bool) (*Config, error) {
	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	if requireProject {
		if _, err := os.Stat(projectPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", projectPath, err)
		}
	}
	projectCfg, projectMeta, err := loadConfigFile(projectPath)
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	merged.applyDefaults()
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Server.Addr = mergeString(projectMeta.IsDefined("server", "addr"), projectCfg.Server.Addr, globalCfg.Server.Addr)
	merged.Server.Port = mergeValue(projectMeta.IsDefined("server", "port"), projectCfg.Server.Port, globalCfg.Server.Port)
	merged.Session.CookieName = mergeString(projectMeta.IsDefined("session", "cookie-name"), projectCfg.Session.CookieName, globalCfg.Session.CookieName)
	merged.Session.Secret = mergeValue(projectMeta.IsDefined("session", "secret"), projectCfg.Session.Secret, globalCfg.Session.Secret)
	merged.Session.IdleTimeout = mergeValue(projectMeta.IsDefined("session", "idle-timeout"), projectCfg.Session.IdleTimeout, globalCfg.Session.IdleTimeout)
	merged.Session.SweepInterval = mergeValue(projectMeta.IsDefined("session", "sweep-interval"), projectCfg.Session.SweepInterval, globalCfg.Session.SweepInterval)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)
	merged.Log.Format = mergeString(projectMeta.IsDefined("log", "format"), projectCfg.Log.Format, globalCfg.Log.Format)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	return strings.TrimSpace(mergeValue(projectDefined, projectValue, globalValue))
}

func mergeValue[T any](projectDefined bool, projectValue, globalValue T) T {
	if projectDefined {
		return projectValue
	}
	return globalValue
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = DefaultCookieName
	}
	if c.Session.IdleTimeout == 0 {
		c.Session.IdleTimeout = DefaultIdleTimeout
	}
	if c.Session.SweepInterval == 0 {
		c.Session.SweepInterval = DefaultSweepInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Session.IdleTimeout < 0 {
		return fmt.Errorf("session.idle-timeout must be positive")
	}
	if c.Session.SweepInterval < 0 {
		return fmt.Errorf("session.sweep-interval must be positive")
	}
	if !validation.IsValid(c.Log.Level, validLogLevels) {
		return validation.FormatInvalidValueError(ErrInvalidLogLevel, c.Log.Level, validLogLevels)
	}
	if !validation.IsValid(c.Log.Format, validLogFormats) {
		return validation.FormatInvalidValueError(ErrInvalidLogFormat, c.Log.Format, validLogFormats)
	}
	return nil
}

// Default returns a configuration with only defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

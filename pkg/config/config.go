// Package config provides configuration loading for the fluentkit demo runner.
//
// Configuration is resolved in layers: DefaultConfig, then an optional file
// (.yaml/.yml or .hcl), then environment variable overrides. Database
// settings are pointers so that only values actually provided are applied to
// a builders.DatabaseConfigBuilder; everything else keeps the builder's
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/jdziat/fluentkit/pkg/builders"
	pkgerrors "github.com/jdziat/fluentkit/pkg/errors"
)

// Config represents the complete demo runner configuration.
type Config struct {
	Runner   RunnerConfig     `yaml:"runner"`
	Database DatabaseSettings `yaml:"database"`
}

// RunnerConfig selects which demos run and how loudly.
type RunnerConfig struct {
	// Demos lists demo names to run. Empty means all demos.
	Demos   []string `yaml:"demos" hcl:"demos,optional"`
	Verbose bool     `yaml:"verbose" hcl:"verbose,optional"`
}

// DatabaseSettings holds the database values provided by a file or the
// environment. A nil field was not provided.
type DatabaseSettings struct {
	Host           *string           `yaml:"host" hcl:"host,optional"`
	Port           *int              `yaml:"port" hcl:"port,optional"`
	Name           *string           `yaml:"name" hcl:"name,optional"`
	Username       *string           `yaml:"username" hcl:"username,optional"`
	Password       *string           `yaml:"password" hcl:"password,optional"`
	MaxConnections *int              `yaml:"max_connections" hcl:"max_connections,optional"`
	ConnectTimeout *string           `yaml:"connect_timeout" hcl:"connect_timeout,optional"`
	SSL            *bool             `yaml:"ssl" hcl:"ssl,optional"`
	Options        map[string]string `yaml:"options" hcl:"options,optional"`
}

// hclFile is the HCL document shape: both sections are optional blocks.
type hclFile struct {
	Runner   *RunnerConfig     `hcl:"runner,block"`
	Database *DatabaseSettings `hcl:"database,block"`
}

// configFileNames are searched for, in order, by FindConfigFile.
var configFileNames = []string{
	".fluentkit.yaml",
	".fluentkit.yml",
	".fluentkit.hcl",
}

// DefaultConfig returns the default configuration: all demos, quiet, and
// no database overrides.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads configuration from path and the environment.
// An empty path searches for a config file with FindConfigFile; finding none
// is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = FindConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		// Only file values are expanded; environment values are taken as is.
		expandEnvVars(cfg)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile walks up from the working directory looking for a config
// file. It returns "" when none is found.
func FindConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigFileFrom(dir)
}

func findConfigFileFrom(dir string) string {
	for {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadFromFile reads configuration from a YAML or HCL file, chosen by extension.
func loadFromFile(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: %s: %v", pkgerrors.ErrInvalidConfig, path, err)
		}
		return nil
	case ".hcl":
		var doc hclFile
		if err := hclsimple.DecodeFile(path, nil, &doc); err != nil {
			return fmt.Errorf("%w: %v", pkgerrors.ErrInvalidConfig, err)
		}
		if doc.Runner != nil {
			cfg.Runner = *doc.Runner
		}
		if doc.Database != nil {
			cfg.Database = *doc.Database
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", pkgerrors.ErrUnsupportedConfigFormat, path)
	}
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) error {
	if demos := GetEnvList(EnvDemos); demos != nil {
		cfg.Runner.Demos = demos
	}
	if GetEnvBool(EnvVerbose) {
		cfg.Runner.Verbose = true
	}

	db := &cfg.Database
	if v := os.Getenv(EnvDBHost); v != "" {
		db.Host = &v
	}
	if v := os.Getenv(EnvDBName); v != "" {
		db.Name = &v
	}
	if v := os.Getenv(EnvDBUser); v != "" {
		db.Username = &v
	}
	if v := os.Getenv(EnvDBPassword); v != "" {
		db.Password = &v
	}

	ints := []struct {
		env    string
		target **int
	}{
		{EnvDBPort, &db.Port},
		{EnvDBMaxConnections, &db.MaxConnections},
	}
	for _, item := range ints {
		n, ok, err := GetEnvInt(item.env)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", pkgerrors.ErrInvalidConfig, item.env, err)
		}
		if ok {
			*item.target = &n
		}
	}
	return nil
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars expands ${VAR} references in the file's database password.
func expandEnvVars(cfg *Config) {
	if cfg.Database.Password != nil {
		expanded := expandEnvVar(*cfg.Database.Password)
		cfg.Database.Password = &expanded
	}
}

// expandEnvVar expands ${VAR} references in s.
// A bare $ is kept literally, so "pa$sword" stays as written.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envRef.FindStringSubmatch(match)[1])
	})
}

// Validate checks values that cannot be checked by type alone.
func (c *Config) Validate() error {
	if c.Database.ConnectTimeout != nil {
		if _, err := time.ParseDuration(*c.Database.ConnectTimeout); err != nil {
			return fmt.Errorf("%w: %w", pkgerrors.ErrInvalidConfig,
				pkgerrors.NewValidationErrorWithCause("database.connect_timeout", "must be a duration such as 5s", err))
		}
	}
	for _, name := range c.Runner.Demos {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: %w", pkgerrors.ErrInvalidConfig,
				pkgerrors.NewValidationError("runner.demos", "names cannot be empty"))
		}
	}
	return nil
}

// Apply copies every provided setting onto b and returns b.
// Settings that were not provided leave b unchanged.
func (s DatabaseSettings) Apply(b *builders.DatabaseConfigBuilder) (*builders.DatabaseConfigBuilder, error) {
	if s.Host != nil {
		b.Host(*s.Host)
	}
	if s.Port != nil {
		b.Port(*s.Port)
	}
	if s.Name != nil {
		b.Database(*s.Name)
	}
	if s.Username != nil {
		b.Username(*s.Username)
	}
	if s.Password != nil {
		b.Password(*s.Password)
	}
	if s.MaxConnections != nil {
		b.MaxConnections(*s.MaxConnections)
	}
	if s.ConnectTimeout != nil {
		d, err := time.ParseDuration(*s.ConnectTimeout)
		if err != nil {
			return b, pkgerrors.NewValidationErrorWithCause("database.connect_timeout", "must be a duration such as 5s", err)
		}
		b.ConnectTimeout(d)
	}
	if s.SSL != nil {
		b.SSL(*s.SSL)
	}
	b.Options(s.Options)
	return b, nil
}

// DatabaseConfig builds a database configuration from the builder defaults
// overlaid with the provided settings.
func (c *Config) DatabaseConfig() (builders.DatabaseConfig, error) {
	b, err := c.Database.Apply(builders.NewDatabaseConfig())
	if err != nil {
		return builders.DatabaseConfig{}, err
	}
	return b.Build(), nil
}

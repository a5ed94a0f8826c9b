package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vortex-fintech/go-brmask/validator"
)

const (
	DefaultServiceName      = "brmask"
	DefaultLogEnv           = "production"
	DefaultPasteDelay       = 10 * time.Millisecond
	DefaultMetricsNamespace = "brmask"

	envPrefix = "BRMASK_"
)

var (
	ErrInvalidConfig = errors.New("config: invalid")
	errReadFile      = errors.New("config: cannot read file")
	errDecode        = errors.New("config: cannot decode yaml")
	errEnvDuration   = errors.New("config: invalid duration in environment")
)

type Config struct {
	ServiceName      string        `yaml:"service_name" validate:"required,max=64"`
	LogEnv           string        `yaml:"log_env" validate:"oneof=development debug production"`
	PasteDelay       time.Duration `yaml:"paste_delay" validate:"gte=0,lte=1s"`
	MetricsNamespace string        `yaml:"metrics_namespace" validate:"max=64"`
}

// Default returns the configuration used when nothing is provided.
func Default() Config {
	return Config{
		ServiceName:      DefaultServiceName,
		LogEnv:           DefaultLogEnv,
		PasteDelay:       DefaultPasteDelay,
		MetricsNamespace: DefaultMetricsNamespace,
	}
}

// Load reads path (skipped when empty), applies BRMASK_* environment
// overrides, fills defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Config{}

	if path = strings.TrimSpace(path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", errReadFile, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", errDecode, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	cfg = cfg.normalized()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "SERVICE_NAME"); ok {
		cfg.ServiceName = v
	}
	if v, ok := lookup(envPrefix + "LOG_ENV"); ok {
		cfg.LogEnv = v
	}
	if v, ok := lookup(envPrefix + "METRICS_NAMESPACE"); ok {
		cfg.MetricsNamespace = v
	}
	if v, ok := lookup(envPrefix + "PASTE_DELAY"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errEnvDuration, envPrefix+"PASTE_DELAY", err)
		}
		cfg.PasteDelay = d
	}
	return nil
}

func (c Config) normalized() Config {
	out := c
	out.ServiceName = strings.TrimSpace(out.ServiceName)
	if out.ServiceName == "" {
		out.ServiceName = DefaultServiceName
	}
	out.LogEnv = strings.ToLower(strings.TrimSpace(out.LogEnv))
	if out.LogEnv == "" {
		out.LogEnv = DefaultLogEnv
	}
	if out.PasteDelay == 0 {
		out.PasteDelay = DefaultPasteDelay
	}
	out.MetricsNamespace = strings.TrimSpace(out.MetricsNamespace)
	if out.MetricsNamespace == "" {
		out.MetricsNamespace = DefaultMetricsNamespace
	}
	return out
}

// Validate reports every invalid field as "field=code", sorted.
func (c Config) Validate() error {
	res := validator.Validate(c)
	if len(res) == 0 {
		return nil
	}

	parts := make([]string, 0, len(res))
	for field, code := range res {
		parts = append(parts, field+"="+code)
	}
	sort.Strings(parts)
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(parts, ", "))
}

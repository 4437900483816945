package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/davidleathers/credit-memo-compliance/internal/domain/errors"
)

// envPrefix namespaces environment overrides; a double underscore
// separates nesting levels so snake_case keys survive (CMC_ENGINE__SLA_DAYS).
const envPrefix = "CMC_"

const defaultConfigPath = "configs/config.yaml"

type Config struct {
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`

	Engine EngineConfig `koanf:"engine"`
}

// EngineConfig is the validation engine's tuning surface
type EngineConfig struct {
	SLADays              int      `koanf:"sla_days" validate:"min=1"`
	MissingLevelsForHigh int      `koanf:"missing_levels_for_high" validate:"min=1"`
	KeywordsPromotional  []string `koanf:"keywords_promotional"`
	KeywordsContract     []string `koanf:"keywords_contract"`
	Workers              int      `koanf:"workers" validate:"min=0"`
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment overrides, in that order of increasing precedence. An
// explicitly given path must exist; the default path is optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := &Config{
		Version:     "dev",
		Environment: "development",
		LogLevel:    "info",
		Engine: EngineConfig{
			SLADays:              5,
			MissingLevelsForHigh: 2,
			KeywordsPromotional:  []string{"promotional", "promotion"},
			KeywordsContract:     []string{"contract"},
		},
	}

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, apperrors.NewConfigError("CONFIG_DEFAULTS", "loading defaults").WithCause(err)
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && explicit {
		return nil, apperrors.NewConfigError("CONFIG_FILE", "loading config file "+path).WithCause(err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, apperrors.NewConfigError("CONFIG_ENV", "loading environment variables").WithCause(err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, apperrors.NewConfigError("CONFIG_UNMARSHAL", "unmarshaling config").WithCause(err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, apperrors.NewConfigError("CONFIG_INVALID", "invalid configuration").WithCause(err)
	}

	return &cfg, nil
}

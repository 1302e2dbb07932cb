package settings

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Defaults applied before any file or environment override.
const (
	DefaultEngine  = "ring"
	DefaultTimeout = 30
)

// Load reads configuration from the given file, or from triage.yaml in the
// working directory and ./config when path is empty. A missing file is not
// an error in that case: defaults and TRIAGE_* environment overrides still
// apply. An explicitly given path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("desk.engine", DefaultEngine)
	v.SetDefault("desk.capacity", 0)
	v.SetDefault("desk.prompt_capacity", true)
	v.SetDefault("logger.log_level", "info")
	v.SetDefault("logger.file_log_name", "")
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.compress", false)
	v.SetDefault("bench.timeout", DefaultTimeout)
	v.SetDefault("bench.binary", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("triage")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("TRIAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if path != "" || !notFound {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values against the constraints declared on the
// config structs.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Package config loads carehome settings from a YAML file, CAREHOME_*
// environment variables and built-in defaults, in that order of precedence
// (environment wins over file).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// CAREHOME_STORAGE_DRIVER.
const EnvPrefix = "CAREHOME"

// DefaultFile is read when no explicit config path is given and it exists.
const DefaultFile = "carehome.yaml"

// Config holds all configuration options.
type Config struct {
	Storage    StorageConfig    `mapstructure:"storage"`
	Archive    ArchiveConfig    `mapstructure:"archive"`
	Log        LogConfig        `mapstructure:"log"`
	Compliance ComplianceConfig `mapstructure:"compliance"`
}

// StorageConfig selects the snapshot backend.
type StorageConfig struct {
	Driver   string      `mapstructure:"driver"` // memory|file|sqlite|postgres|redis
	Path     string      `mapstructure:"path"`   // file or sqlite location
	Postgres string      `mapstructure:"postgres_dsn"`
	Redis    RedisConfig `mapstructure:"redis"`
}

// RedisConfig configures the redis snapshot backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

// ArchiveConfig selects where and how discharge archives are written.
type ArchiveConfig struct {
	Driver string   `mapstructure:"driver"` // fs|s3|memory
	Root   string   `mapstructure:"root"`
	Format string   `mapstructure:"format"` // csv|xlsx
	Prefix string   `mapstructure:"prefix"`
	S3     S3Config `mapstructure:"s3"`
}

// S3Config configures the s3 archive driver.
type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	Prefix          string `mapstructure:"prefix"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	PathStyle       bool   `mapstructure:"path_style"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug|info|warn|error
	Format string `mapstructure:"format"` // console|json
}

// ComplianceConfig toggles optional compliance rules.
type ComplianceConfig struct {
	RequireDoctor bool `mapstructure:"require_doctor"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Storage: StorageConfig{
			Driver: "file",
			Path:   "carehome.json",
			Redis:  RedisConfig{Addr: "localhost:6379", Key: "carehome:snapshot"},
		},
		Archive: ArchiveConfig{
			Driver: "fs",
			Root:   "./archives",
			Format: "csv",
			Prefix: "archives",
			S3:     S3Config{Region: "us-east-1"},
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.postgres_dsn", d.Storage.Postgres)
	v.SetDefault("storage.redis.addr", d.Storage.Redis.Addr)
	v.SetDefault("storage.redis.password", d.Storage.Redis.Password)
	v.SetDefault("storage.redis.db", d.Storage.Redis.DB)
	v.SetDefault("storage.redis.key", d.Storage.Redis.Key)
	v.SetDefault("archive.driver", d.Archive.Driver)
	v.SetDefault("archive.root", d.Archive.Root)
	v.SetDefault("archive.format", d.Archive.Format)
	v.SetDefault("archive.prefix", d.Archive.Prefix)
	v.SetDefault("archive.s3.bucket", d.Archive.S3.Bucket)
	v.SetDefault("archive.s3.region", d.Archive.S3.Region)
	v.SetDefault("archive.s3.endpoint", d.Archive.S3.Endpoint)
	v.SetDefault("archive.s3.prefix", d.Archive.S3.Prefix)
	v.SetDefault("archive.s3.access_key_id", d.Archive.S3.AccessKeyID)
	v.SetDefault("archive.s3.secret_access_key", d.Archive.S3.SecretAccessKey)
	v.SetDefault("archive.s3.path_style", d.Archive.S3.PathStyle)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("compliance.require_doctor", d.Compliance.RequireDoctor)
}

// Load reads configuration into v. An empty path falls back to DefaultFile
// when it exists; an explicit path must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case path != "":
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	default:
		if _, err := os.Stat(DefaultFile); err == nil {
			v.SetConfigFile(DefaultFile)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", DefaultFile, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown drivers, formats and levels.
func (c Config) Validate() error {
	var errs []error
	check := func(field, value string, allowed ...string) {
		for _, a := range allowed {
			if strings.EqualFold(value, a) {
				return
			}
		}
		errs = append(errs, fmt.Errorf("%s: unsupported value %q (want one of %s)", field, value, strings.Join(allowed, ", ")))
	}
	check("storage.driver", c.Storage.Driver, "memory", "file", "sqlite", "postgres", "redis")
	check("archive.driver", c.Archive.Driver, "fs", "s3", "memory")
	check("archive.format", c.Archive.Format, "csv", "xlsx")
	check("log.level", c.Log.Level, "debug", "info", "warn", "error")
	check("log.format", c.Log.Format, "console", "json")
	if strings.EqualFold(c.Storage.Driver, "file") && c.Storage.Path == "" {
		errs = append(errs, errors.New("storage.path: required for file driver"))
	}
	if strings.EqualFold(c.Archive.Driver, "s3") && c.Archive.S3.Bucket == "" {
		errs = append(errs, errors.New("archive.s3.bucket: required for s3 driver"))
	}
	return errors.Join(errs...)
}

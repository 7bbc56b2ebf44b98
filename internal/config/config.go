package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release or test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig selects the backing store. Driver is "mongo" or "memory";
// the memory driver keeps everything in process and is meant for local runs.
type DatabaseConfig struct {
	Driver  string        `mapstructure:"driver"`
	URI     string        `mapstructure:"uri"`
	Name    string        `mapstructure:"name"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// S3Config configures the optional log export bucket. Export is disabled
// when BucketName is empty.
type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	UseSSL          bool          `mapstructure:"use_ssl"`
	ExportExpiry    time.Duration `mapstructure:"export_expiry"`
}

// Enabled reports whether a bucket has been configured.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

// LogConfig controls the rotating log file. An empty Dir logs to stdout only.
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	// Deployments of the tracker historically set MONGO_URL and PORT.
	if err = v.BindEnv("database.uri", "DATABASE_URI", "MONGO_URL"); err != nil {
		return
	}
	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Running on defaults and env vars alone is fine
		err = nil
	} else if err != nil {
		return
	}

	if port := os.Getenv("PORT"); port != "" && os.Getenv("SERVER_ADDRESS") == "" && !v.InConfig("server.address") {
		v.Set("server.address", ":"+port)
	}

	// Duration strings ("10s", "15m") decode straight into time.Duration fields.
	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":3000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "5s")

	v.SetDefault("database.driver", "mongo")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "exercise_tracker")
	v.SetDefault("database.timeout", "10s")

	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.export_expiry", "15m")

	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 30)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)
}

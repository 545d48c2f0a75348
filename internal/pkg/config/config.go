package config

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads .env (local only) and builds the validated application config
// from the environment
func InitConfig(configPath string) (*models.Config, error) {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	configs := loadConfig(v)
	if err := Validate(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// Validate checks the struct tags of every config section
func Validate(configs *models.Config) error {
	if err := validator.New().Struct(configs); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_NAME", "nebengjek-navigation")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 9994)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("JWT_EXPIRATION", 60)

	v.SetDefault("MAPBOX_BASE_URL", "https://api.mapbox.com")
	v.SetDefault("MAPBOX_TIMEOUT_SECONDS", 10)
	v.SetDefault("MAPBOX_MAX_RETRIES", 2)

	v.SetDefault("TRACKING_PROFILE_FLUSH_SECONDS", 30)
	v.SetDefault("TRACKING_FIX_TIMEOUT_SECONDS", 10)
	v.SetDefault("TRACKING_INITIAL_FIX_RETRIES", 3)
	v.SetDefault("TRACKING_WRITE_TIMEOUT_SECONDS", 5)

	v.SetDefault("NAV_PROGRESS_INTERVAL_SECONDS", 5)
	v.SetDefault("NAV_PROXIMITY_ADVANCE", false)
	v.SetDefault("NAV_PROXIMITY_RADIUS_METERS", 30.0)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "logs/navigation.log")
	v.SetDefault("LOG_TYPE", "file")

	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NATS.URL = v.GetString("NATS_URL")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.Mapbox.BaseURL = v.GetString("MAPBOX_BASE_URL")
	configs.Mapbox.AccessToken = v.GetString("MAPBOX_ACCESS_TOKEN")
	configs.Mapbox.TimeoutSec = v.GetInt("MAPBOX_TIMEOUT_SECONDS")
	configs.Mapbox.MaxRetries = v.GetInt("MAPBOX_MAX_RETRIES")

	configs.Tracking.ProfileFlushSeconds = v.GetInt("TRACKING_PROFILE_FLUSH_SECONDS")
	configs.Tracking.FixTimeoutSeconds = v.GetInt("TRACKING_FIX_TIMEOUT_SECONDS")
	configs.Tracking.InitialFixRetries = v.GetInt("TRACKING_INITIAL_FIX_RETRIES")
	configs.Tracking.WriteTimeoutSeconds = v.GetInt("TRACKING_WRITE_TIMEOUT_SECONDS")

	configs.Navigation.ProgressIntervalSeconds = v.GetInt("NAV_PROGRESS_INTERVAL_SECONDS")
	configs.Navigation.ProximityAdvance = v.GetBool("NAV_PROXIMITY_ADVANCE")
	configs.Navigation.ProximityRadiusMeters = v.GetFloat64("NAV_PROXIMITY_RADIUS_METERS")

	configs.Internal.APIKey = v.GetString("INTERNAL_API_KEY")

	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	return configs
}

package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	Mapbox     MapboxConfig
	Tracking   TrackingConfig
	Navigation NavigationConfig
	Internal   InternalAPIConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `validate:"required"`
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int `validate:"gt=0"`
	ReadTimeout     int `validate:"gte=0"`
	WriteTimeout    int `validate:"gte=0"`
	ShutdownTimeout int `validate:"gte=0"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string `validate:"required"`
	Port      int    `validate:"gt=0"`
	Username  string
	Password  string
	Database  string `validate:"required"`
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"gt=0"`
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string `validate:"required"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `validate:"required"`
	Expiration int    // in minutes
	Issuer     string
}

// MapboxConfig contains the geocoding and directions provider settings
type MapboxConfig struct {
	BaseURL     string `validate:"required,url"`
	AccessToken string
	TimeoutSec  int `validate:"gte=0"`
	MaxRetries  int `validate:"gte=0"`
}

// TrackingConfig tunes the location tracker
type TrackingConfig struct {
	ProfileFlushSeconds int `validate:"gt=0"`
	FixTimeoutSeconds   int `validate:"gt=0"`
	InitialFixRetries   int `validate:"gt=0"`
	WriteTimeoutSeconds int `validate:"gt=0"`
}

// NavigationConfig tunes the route engine
type NavigationConfig struct {
	ProgressIntervalSeconds int     `validate:"gt=0"`
	ProximityAdvance        bool    // advance steps from live position
	ProximityRadiusMeters   float64 `validate:"gte=0"`
}

// InternalAPIConfig guards service-to-service reads
type InternalAPIConfig struct {
	APIKey string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

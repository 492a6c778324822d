package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	JWT          JWTConfig
	Session      SessionConfig
	Verification VerificationConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	BaseURL     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SessionConfig contains cookie session configuration
type SessionConfig struct {
	Secret string
	MaxAge int // in seconds
	Secure bool
}

// VerificationConfig contains verification code configuration
type VerificationConfig struct {
	TTL            int    // record validity window in seconds
	Algorithm      string // TOTP hash algorithm: SHA1, SHA256 or SHA512
	Digits         int    // code length
	Period         int    // TOTP step in seconds
	MaxAttempts    int    // failed attempts allowed per window
	AttemptWindow  int    // attempt counter window in seconds
	ResendCooldown int    // seconds between resends for the same target
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

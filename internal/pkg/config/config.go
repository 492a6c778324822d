package config

import (
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/adhikara/signon/internal/pkg/models"
)

// InitConfig loads configuration from the environment, optionally seeded
// from an env file when running locally.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				log.Println("error loading config from file", err)
			}
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "signon")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_BASE_URL", "http://localhost:9990")

	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "signon")

	v.SetDefault("SESSION_MAX_AGE", 600)
	v.SetDefault("SESSION_SECURE", false)

	v.SetDefault("VERIFICATION_TTL", 600)
	v.SetDefault("VERIFICATION_ALGORITHM", "SHA256")
	v.SetDefault("VERIFICATION_DIGITS", 6)
	v.SetDefault("VERIFICATION_PERIOD", 30)
	v.SetDefault("VERIFICATION_MAX_ATTEMPTS", 5)
	v.SetDefault("VERIFICATION_ATTEMPT_WINDOW", 600)
	v.SetDefault("VERIFICATION_RESEND_COOLDOWN", 60)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.BaseURL = v.GetString("APP_BASE_URL")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Session config
	configs.Session.Secret = v.GetString("SESSION_SECRET")
	configs.Session.MaxAge = v.GetInt("SESSION_MAX_AGE")
	configs.Session.Secure = v.GetBool("SESSION_SECURE")

	// Verification config
	configs.Verification.TTL = v.GetInt("VERIFICATION_TTL")
	configs.Verification.Algorithm = v.GetString("VERIFICATION_ALGORITHM")
	configs.Verification.Digits = v.GetInt("VERIFICATION_DIGITS")
	configs.Verification.Period = v.GetInt("VERIFICATION_PERIOD")
	configs.Verification.MaxAttempts = v.GetInt("VERIFICATION_MAX_ATTEMPTS")
	configs.Verification.AttemptWindow = v.GetInt("VERIFICATION_ATTEMPT_WINDOW")
	configs.Verification.ResendCooldown = v.GetInt("VERIFICATION_RESEND_COOLDOWN")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

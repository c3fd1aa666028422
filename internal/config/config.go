package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string         // Env is the current environment: local, development, production.
	HTTP     HTTPConfig     // HTTP holds the listener configuration.
	Postgres PostgresConfig // Postgres holds the database configuration.
}

// HTTPConfig struct holds the address the API server binds to.
type HTTPConfig struct {
	Host string // Host is the interface to bind, e.g. 0.0.0.0.
	Port string // Port is the listener port.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// MustLoad loads the configuration from environment variables and returns a Config struct.
// A local .env file, if present, seeds the environment first. Every variable has a
// default, so the service starts without any configuration at all.
func MustLoad() *Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("APP_HOST", "0.0.0.0")
	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("POSTGRES_USER", "appuser")
	viper.SetDefault("POSTGRES_PASSWORD", "apppass")
	viper.SetDefault("POSTGRES_HOST", "postgres")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_DB", "appdb")

	return &Config{
		Env: viper.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: viper.GetString("APP_HOST"),
			Port: viper.GetString("APP_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetString("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			Dbname:   viper.GetString("POSTGRES_DB"),
		},
	}
}

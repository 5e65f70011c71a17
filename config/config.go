package config

import (
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env  string
	Port string

	// DATABASE_URL имеет приоритет над отдельными полями
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	CORSAllowOrigins []string

	SeedDemoData           bool
	DemoAdminPassword      string
	DuplicateCheckSchedule string

	LogLevel  string
	LogFormat string
}

// Load читает конфигурацию из окружения (и .env, если он есть)
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	env := getEnv(v, "APP_ENV", getEnv(v, "NODE_ENV", "development"))

	v.SetDefault("SEED_DEMO_DATA", env != "production")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	return &Config{
		Env:                    env,
		Port:                   getEnv(v, "PORT", "3001"),
		DatabaseURL:            getEnv(v, "DATABASE_URL", ""),
		DBHost:                 getEnv(v, "DB_HOST", "localhost"),
		DBPort:                 getEnv(v, "DB_PORT", "5432"),
		DBUser:                 getEnv(v, "DB_USER", "numberwise"),
		DBPassword:             getEnv(v, "DB_PASSWORD", ""),
		DBName:                 getEnv(v, "DB_NAME", "numberwise"),
		DBMaxOpenConns:         v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:         v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:      v.GetDuration("DB_CONN_MAX_LIFETIME"),
		CORSAllowOrigins:       splitList(getEnv(v, "CORS_ALLOW_ORIGINS", "*")),
		SeedDemoData:           v.GetBool("SEED_DEMO_DATA"),
		DemoAdminPassword:      getEnv(v, "DEMO_ADMIN_PASSWORD", ""),
		DuplicateCheckSchedule: getEnv(v, "DUPLICATE_CHECK_SCHEDULE", "@hourly"),
		LogLevel:               getEnv(v, "LOG_LEVEL", "info"),
		LogFormat:              getEnv(v, "LOG_FORMAT", "json"),
	}
}

// IsProduction включает обязательный TLS для соединения с БД
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SSLMode возвращает sslmode для lib/pq
func (c *Config) SSLMode() string {
	if c.IsProduction() {
		return "require"
	}
	return "disable"
}

// DSN собирает строку подключения. Явно заданный sslmode в DATABASE_URL не перезаписывается.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		u, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return c.DatabaseURL
		}
		q := u.Query()
		if q.Get("sslmode") == "" {
			q.Set("sslmode", c.SSLMode())
		}
		u.RawQuery = q.Encode()
		return u.String()
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode()}}.Encode(),
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	return u.String()
}

func getEnv(v *viper.Viper, key, defaultValue string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

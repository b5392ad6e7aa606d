package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort                string
	MySQLDSN                  string
	RedisAddr                 string
	RedisDB                   int
	RedisPass                 string
	JWTSecret                 string
	JWTAlgorithm              string
	AccessTokenExpireMinutes  int
	RefreshTokenExpireMinutes int
	SeedSource                string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:                getEnv("SERVER_PORT", "8080"),
		MySQLDSN:                  getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/madr?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:                 getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:                   getEnvInt("REDIS_DB", 0),
		RedisPass:                 os.Getenv("REDIS_PASSWORD"),
		JWTSecret:                 getEnv("JWT_SECRET", "change-me"),
		JWTAlgorithm:              getEnv("JWT_ALGORITHM", "HS256"),
		AccessTokenExpireMinutes:  getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		RefreshTokenExpireMinutes: getEnvInt("REFRESH_TOKEN_EXPIRE_MINUTES", 30),
		SeedSource:                os.Getenv("SEED_SOURCE"),
	}
}

// AccessTokenExpiry returns the access token lifetime as a duration.
func (c *Config) AccessTokenExpiry() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// RefreshTokenExpiry returns the lifetime of tokens issued on refresh.
func (c *Config) RefreshTokenExpiry() time.Duration {
	return time.Duration(c.RefreshTokenExpireMinutes) * time.Minute
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HumanFirst           bool
	RestartDelay         time.Duration
	ClearScreen          bool
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	RedisURL             string
	RedisPassword        string
	MoveCacheTTL         time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	// Game
	humanFirst := GetEnvAsBool("HUMAN_FIRST", true)
	restartDelaySec := GetEnvAsInt("RESTART_DELAY_SECONDS", 5)
	clearScreen := GetEnvAsBool("CLEAR_SCREEN", true)

	// History database, empty disables it
	dbURL := GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", ""))
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 5)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)

	// Move cache, empty disables it
	redisURL := GetEnv("REDIS_URL", "")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	moveCacheTTLMin := GetEnvAsInt("MOVE_CACHE_TTL_MINUTES", 60)

	if restartDelaySec < 0 {
		log.Printf("Negative RESTART_DELAY_SECONDS %d, using 0", restartDelaySec)
		restartDelaySec = 0
	}

	AppConfig = &Config{
		HumanFirst:           humanFirst,
		RestartDelay:         time.Duration(restartDelaySec) * time.Second,
		ClearScreen:          clearScreen,
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       dbMaxOpenConns,
		DBMaxIdleConns:       dbMaxIdleConns,
		DBConnMaxLifetimeMin: dbConnMaxLifetimeMin,
		RedisURL:             redisURL,
		RedisPassword:        redisPassword,
		MoveCacheTTL:         time.Duration(moveCacheTTLMin) * time.Minute,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

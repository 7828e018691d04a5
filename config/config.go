package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Feed     FeedConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	Port string
	// Timezone decides what "today" means for a fresh form draft.
	Timezone string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	PoolSize    int // 0 uses the go-redis default
	DialTimeout time.Duration
}

type AuthConfig struct {
	SessionTTL     time.Duration
	ResetTokenTTL  time.Duration
	VerifyTokenTTL time.Duration
	BcryptCost     int
}

type CacheConfig struct {
	SnapshotTTL time.Duration
}

type FeedConfig struct {
	Backend   string // redis or memory
	BlockTime time.Duration
	MaxLen    int64
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Auth:     GetAuthConfig(),
		Feed:     GetFeedConfig(),
		Cache:    GetCacheConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // test DB listens on 5433
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:        "localhost",
		Port:        "6380", // test Redis listens on 6380
		Password:    "",
		DB:          1,
		DialTimeout: time.Second,
	}

	return &Config{
		Server:   ServerConfig{Port: "0", Timezone: "UTC"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Auth: AuthConfig{
			SessionTTL:     time.Minute,
			ResetTokenTTL:  time.Minute,
			VerifyTokenTTL: time.Minute,
			BcryptCost:     4,
		},
		Feed: FeedConfig{
			Backend:   "memory",
			BlockTime: 200 * time.Millisecond,
			MaxLen:    1000,
		},
		Cache: CacheConfig{SnapshotTTL: time.Minute},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:     getEnv("SERVER_PORT", "8080"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	poolSize, err := strconv.Atoi(getEnv("REDIS_POOL_SIZE", "100"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:        getEnv("REDIS_HOST", "localhost"),
		Port:        getEnv("REDIS_PORT", "6379"),
		Password:    getEnv("REDIS_PASSWORD", ""),
		DB:          db,
		PoolSize:    poolSize,
		DialTimeout: getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
	}
}

func GetAuthConfig() AuthConfig {
	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil {
		panic(err)
	}

	return AuthConfig{
		BcryptCost:     cost,
		SessionTTL:     getDuration("SESSION_TTL", 7*24*time.Hour),
		ResetTokenTTL:  getDuration("RESET_TOKEN_TTL", time.Hour),
		VerifyTokenTTL: getDuration("VERIFY_TOKEN_TTL", 24*time.Hour),
	}
}

func GetFeedConfig() FeedConfig {
	maxLen, err := strconv.ParseInt(getEnv("FEED_MAX_LEN", "10000"), 10, 64)
	if err != nil {
		panic(err)
	}

	return FeedConfig{
		Backend:   getEnv("FEED_BACKEND", "redis"),
		BlockTime: getDuration("FEED_BLOCK_TIME", 2*time.Second),
		MaxLen:    maxLen,
	}
}

func GetCacheConfig() CacheConfig {
	return CacheConfig{
		SnapshotTTL: getDuration("SNAPSHOT_TTL", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}
	return d
}

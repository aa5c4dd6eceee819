package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // APP_TIMEZONE must resolve on minimal images
)

type Config struct {
	Port         string
	DatabaseDSN  string
	DBLogLevel   string
	AutoMigrate  bool
	Location     *time.Location
	JWTSecret    string
	JWTTTL       time.Duration
	RedisAddr    string
	CacheTTL     time.Duration
	KafkaBrokers []string
	KafkaTopic   string
	LiveInterval time.Duration
	CORSOrigins  string
	ServiceName  string
}

// Load reads configuration from the environment. Call godotenv.Load before it
// so values from .env are visible.
func Load() Config {
	return Config{
		Port:         getenv("PORT", "3000"),
		DatabaseDSN:  databaseDSN(),
		DBLogLevel:   getenv("DB_LOG_LEVEL", "warn"),
		AutoMigrate:  getbool("DB_AUTO_MIGRATE", true),
		Location:     location(getenv("APP_TIMEZONE", "Asia/Jakarta")),
		JWTSecret:    getenv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTTTL:       getduration("JWT_TTL", 24*time.Hour),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		CacheTTL:     getduration("CACHE_TTL", 30*time.Second),
		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getenv("KAFKA_TOPIC", "dashboard.events"),
		LiveInterval: getduration("LIVE_PUSH_INTERVAL", 10*time.Second),
		CORSOrigins:  getenv("CORS_ORIGINS", "*"),
		ServiceName:  getenv("SERVICE_NAME", "sales-dashboard-api"),
	}
}

// databaseDSN prefers DATABASE_URL and otherwise assembles a key/value DSN
// from the individual DB_* variables.
func databaseDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_NAME", "cwi_data"),
		getenv("DB_PORT", "5432"),
		getenv("APP_TIMEZONE", "Asia/Jakarta"),
	)
}

func location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: unknown APP_TIMEZONE %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid duration for %s=%q, using %s", k, v, def)
		return def
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

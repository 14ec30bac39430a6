package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr      string
	AuthJWTSecret string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	AMQPURL string
	Events  EventsConfig

	Import ImportConfig
}

// EventsConfig enumerates the notification queues per integration event.
// An empty list disables dispatch for that event.
type EventsConfig struct {
	GasCostCreated            []string
	GasSituationReportCreated []string
	GasSituationReportUpdated []string
}

// ImportConfig controls the daily gas report ingest.
type ImportConfig struct {
	Offtakers []string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "gasplex"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),

		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		AuthJWTSecret: strings.TrimSpace(getenv("AUTH_JWT_SECRET", "")),

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "gasplex"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", "postgres"),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 25),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 300),

		AMQPURL: strings.TrimSpace(getenv("AMQP_URL", "")),
		Events: EventsConfig{
			GasCostCreated:            parseList(getenv("GAS_COST_CREATED_QUEUES", "")),
			GasSituationReportCreated: parseList(getenv("GAS_SITUATION_REPORT_CREATED_QUEUES", "")),
			GasSituationReportUpdated: parseList(getenv("GAS_SITUATION_REPORT_UPDATED_QUEUES", "")),
		},

		Import: ImportConfig{
			Offtakers: parseList(getenv("IMPORT_OFFTAKERS", strings.Join(defaultOfftakers, ","))),
		},
	}
}

// defaultOfftakers is the offtaker directory recognized by the daily gas
// report import when no override is configured.
var defaultOfftakers = []string{
	"PARAS CAPTIVE",
	"PARAS EMBEDDED",
	"TOWER POWER",
	"QUANTUM STEELS",
	"NIGER BISCUIT",
	"SUNFLAG STEEL",
	"GREEN FUEL",
	"SUNFLAG STEEL (SHAGAMU STEEL)",
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

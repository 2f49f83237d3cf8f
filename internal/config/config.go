package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// devJWTSecret is only ever used outside production mode. Startup fails
// when APP_ENV=production and JWT_SECRET is empty.
const devJWTSecret = "visionx-dev-secret"

type Config struct {
	ServiceName string
	Env         string

	ServerPort int

	DatabaseURL string

	JWTSecret []byte

	AdminEmail    string
	AdminPassword string

	AIBaseURL string
	AIAPIKey  string
	AIModel   string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	KafkaBrokers []string
	KafkaTopic   string

	UploadDir string

	StrictAppointmentFlow bool
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env not found: %v, using system environment", err)
	}

	cfg := Config{
		ServiceName: EnvDefault("SERVICE_NAME", "visionx"),
		Env:         EnvDefault("APP_ENV", "development"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),

		AdminEmail:    EnvDefault("ADMIN_EMAIL", "admin@visionx.com"),
		AdminPassword: EnvDefault("ADMIN_PASSWORD", "admin123"),

		AIBaseURL: EnvDefault("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
		AIAPIKey:  os.Getenv("AI_API_KEY"),
		AIModel:   EnvDefault("AI_MODEL", "gemini-3-flash-preview"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "inventory"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   EnvDefault("KAFKA_TOPIC", "audit_events"),

		UploadDir: EnvDefault("UPLOAD_DIR", "uploads"),

		StrictAppointmentFlow: EnvBoolDefault("APPOINTMENT_STRICT_TRANSITIONS", false),
	}

	if len(cfg.JWTSecret) == 0 {
		if cfg.Env == "production" {
			log.Fatal("missing required env JWT_SECRET")
		}
		cfg.JWTSecret = []byte(devJWTSecret)
	}

	return cfg
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config concentra toda la configuración del servicio.
type Config struct {
	Port string

	// Servicio clínico remoto (auth, citas "live", usuarios).
	BackendBaseURL string
	BackendTimeout time.Duration

	// Sesiones. Si RedisAddr está vacío, se usa store in-memory.
	RedisAddr     string
	RedisPassword string
	SessionTTL    time.Duration

	// Persistencia local (agregado mock). Si DBDSN está vacío y RedisAddr
	// también, el agregado vive en memoria.
	DBDSN string

	// Zona horaria para la grilla de slots y los follow-ups (default America/Lima).
	Timezone string

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee variables de entorno, opcionalmente desde un archivo .env.
// El .env ausente no es error (igual que en producción).
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)

	return Config{
		Port:           getEnv("PORT", "8080"),
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:4000"),
		BackendTimeout: getDuration("BACKEND_TIMEOUT", 10*time.Second),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		SessionTTL:     getDuration("SESSION_TTL", 12*time.Hour),
		DBDSN:          getEnv("DB_DSN", ""),
		Timezone:       getEnv("TIMEZONE", "America/Lima"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		AppName:        getEnv("APP_NAME", "pochita-clinic"),
	}
}

// Location resuelve la zona horaria configurada; cae a time.Local si no existe.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(strings.TrimSpace(c.Timezone))
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	// También se acepta un entero en segundos (estilo docker-compose).
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

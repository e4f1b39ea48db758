package config

import "os"

// Server captures process-level configuration.
type Server struct {
	Addr          string
	DatabaseURL   string
	RedisURL      string
	KafkaBrokers  string
	JWTSigningKey string
}

// FromEnv builds a Server config from environment variables so main stays
// lean. Empty DatabaseURL selects the in-memory stores; empty RedisURL and
// KafkaBrokers disable the read cache and audit publishing respectively.
func FromEnv() Server {
	addr := os.Getenv("VOTERGUIDE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:          addr,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		KafkaBrokers:  os.Getenv("KAFKA_BROKERS"),
		JWTSigningKey: jwtSigningKey,
	}
}

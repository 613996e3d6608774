// Package config builds the service configuration from environment
// variables so main stays lean.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full runtime configuration.
type Config struct {
	AppName     string
	Environment string
	OpsAddr     string
	LogLevel    string

	Kafka     Kafka
	Redis     RedisConfig
	Postgres  Postgres
	Blob      Blob
	OAuth     OAuth
	Endpoints Endpoints

	// AlderKravAktivert enables automatic old-age case initiation, which
	// the national case system only supports outside production.
	AlderKravAktivert bool
}

// Kafka captures broker and topic configuration.
type Kafka struct {
	Brokers         []string
	GroupID         string
	SedMottattTopic string
	SedSendtTopic   string
	OppgaveTopic    string
	KravTopic       string
	StatistikkTopic string
}

// RedisConfig captures connection settings for the person cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PersonTTL    time.Duration
}

// Postgres captures the statistics outbox database.
type Postgres struct {
	URL string
}

// Blob captures the deferred-journalpost blob container.
type Blob struct {
	ConnectionString string
	Container        string
}

// OAuth captures the client-credentials grant used for outbound calls.
type OAuth struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scope        string
}

// Endpoints lists the collaborator base URLs.
type Endpoints struct {
	Journalpost      string
	Person           string
	Sak              string
	Arbeidsfordeling string
	Gjenny           string
	Eux              string
}

// FromEnv reads configuration from the environment, with development
// defaults for everything non-secret.
func FromEnv() Config {
	return Config{
		AppName:     "journalforing",
		Environment: envOr("ENVIRONMENT", "local"),
		OpsAddr:     envOr("OPS_ADDR", ":8080"),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		Kafka: Kafka{
			Brokers:         strings.Split(envOr("KAFKA_BROKERS", "localhost:9092"), ","),
			GroupID:         envOr("KAFKA_GROUP_ID", "journalforing"),
			SedMottattTopic: envOr("KAFKA_SED_MOTTATT_TOPIC", "eessi.sedmottatt"),
			SedSendtTopic:   envOr("KAFKA_SED_SENDT_TOPIC", "eessi.sedsendt"),
			OppgaveTopic:    envOr("KAFKA_OPPGAVE_TOPIC", "oppgave.opprett"),
			KravTopic:       envOr("KAFKA_KRAV_TOPIC", "pensjon.krav-initialisering"),
			StatistikkTopic: envOr("KAFKA_STATISTIKK_TOPIC", "eessi.statistikk"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PersonTTL:    envDurationOr("REDIS_PERSON_TTL", 5*time.Minute),
		},
		Postgres: Postgres{
			URL: os.Getenv("POSTGRES_URL"),
		},
		Blob: Blob{
			ConnectionString: os.Getenv("BLOB_CONNECTION_STRING"),
			Container:        envOr("BLOB_CONTAINER", "journalforing"),
		},
		OAuth: OAuth{
			TokenURL:     os.Getenv("OAUTH_TOKEN_URL"),
			ClientID:     os.Getenv("OAUTH_CLIENT_ID"),
			ClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
			Scope:        os.Getenv("OAUTH_SCOPE"),
		},
		Endpoints: Endpoints{
			Journalpost:      os.Getenv("JOURNALPOST_URL"),
			Person:           os.Getenv("PERSON_URL"),
			Sak:              os.Getenv("SAK_URL"),
			Arbeidsfordeling: os.Getenv("ARBEIDSFORDELING_URL"),
			Gjenny:           os.Getenv("GJENNY_URL"),
			Eux:              os.Getenv("EUX_URL"),
		},
		AlderKravAktivert: os.Getenv("ALDER_KRAV_AKTIVERT") == "true",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

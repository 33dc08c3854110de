package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	ServerPort string

	MongoURI             string
	MongoDBName          string
	UsersCollectionName  string
	GroupsCollectionName string
	TasksCollectionName  string
	StoreTimeout         time.Duration
	BreakerTimeout       time.Duration
	BreakerMaxFailures   int
	CassandraHosts       []string
	CassandraKeyspace    string
	StrictMembership     bool
	JWTSecret            string
	JWTTTL               time.Duration
	CORSOrigin           string
	LogFile              string
	LogLevel             string
}

// Load reads an optional .env file and then the process environment.
// A missing .env is not an error; values already exported take precedence.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:           getEnv("SERVER_PORT", "5000"),
		MongoURI:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:          getEnv("MONGO_DB_NAME", "back_task"),
		UsersCollectionName:  getEnv("MONGO_USERS_COLLECTION", "USERS"),
		GroupsCollectionName: getEnv("MONGO_GROUPS_COLLECTION", "groups"),
		TasksCollectionName:  getEnv("MONGO_TASKS_COLLECTION", "tasks"),
		StoreTimeout:         getDuration("STORE_TIMEOUT", 10*time.Second),
		BreakerTimeout:       getDuration("BREAKER_TIMEOUT", 5*time.Second),
		BreakerMaxFailures:   getInt("BREAKER_MAX_FAILURES", 3),
		CassandraHosts:       getList("CASSANDRA_HOSTS"),
		CassandraKeyspace:    getEnv("CASSANDRA_KEYSPACE", "notifications"),
		StrictMembership:     getBool("STRICT_MEMBERSHIP", true),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTTTL:               getDuration("JWT_TTL", 24*time.Hour),
		CORSOrigin:           getEnv("CORS_ORIGIN", "https://front-task-beta.vercel.app"),
		LogFile:              getEnv("LOG_FILE", "logs/groups.log"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports every configuration problem that would keep the server from starting.
func (c *Config) Validate() error {
	var errs []error
	if c.ServerPort == "" {
		errs = append(errs, errors.New("SERVER_PORT is not set"))
	}
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGO_URI is not set"))
	}
	if c.MongoDBName == "" {
		errs = append(errs, errors.New("MONGO_DB_NAME is not set"))
	}
	if len(c.JWTSecret) < 16 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 16 characters"))
	}
	if c.BreakerMaxFailures < 0 {
		errs = append(errs, fmt.Errorf("BREAKER_MAX_FAILURES must not be negative, got %d", c.BreakerMaxFailures))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL))
	}
	return errors.Join(errs...)
}

// NotificationsEnabled reports whether a Cassandra cluster is configured.
func (c *Config) NotificationsEnabled() bool {
	return len(c.CassandraHosts) > 0
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names for configuration.
const (
	EnvDisabled         = "FLUENTKIT_DISABLED"
	EnvDemos            = "FLUENTKIT_DEMOS"
	EnvVerbose          = "FLUENTKIT_VERBOSE"
	EnvDBHost           = "FLUENTKIT_DB_HOST"
	EnvDBPort           = "FLUENTKIT_DB_PORT"
	EnvDBName           = "FLUENTKIT_DB_NAME"
	EnvDBUser           = "FLUENTKIT_DB_USER"
	EnvDBPassword       = "FLUENTKIT_DB_PASSWORD"
	EnvDBMaxConnections = "FLUENTKIT_DB_MAX_CONNECTIONS"
)

// GetEnvString returns the value of an environment variable or a default.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvBool returns true if the env var is "true" or "1".
func GetEnvBool(key string) bool {
	v := os.Getenv(key)
	return v == "true" || v == "1"
}

// GetEnvInt returns the integer value of an environment variable.
// ok is false when the variable is unset; err is set when it does not parse.
func GetEnvInt(key string) (n int, ok bool, err error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, true, err
	}
	return n, true, nil
}

// GetEnvList splits a comma-separated environment variable.
// Empty items are dropped; nil is returned when the variable is unset.
func GetEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// IsDisabled returns true if the demo runner is globally disabled.
func IsDisabled() bool {
	return GetEnvBool(EnvDisabled)
}

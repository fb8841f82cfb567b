package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func getEnvAsString(key string, defaultVal string) string {
	if value, exists := lookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvFirst returns the first non-empty value among keys
func getEnvFirst(defaultVal string, keys ...string) string {
	for _, key := range keys {
		if value, exists := lookupEnv(key); exists && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if valueStr, exists := lookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultVal
}

// getEnvAsTimeDuration accepts Go durations ("90s", "2h") or a bare number of seconds
func getEnvAsTimeDuration(key string, defaultVal time.Duration) time.Duration {
	if valueStr, exists := lookupEnv(key); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
		if value, err := strconv.Atoi(valueStr); err == nil {
			return time.Duration(value) * time.Second
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if valueStr, exists := lookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultVal
}

func getEnvAsSlice(key string, defaultVal []string) []string {
	if valueStr, exists := lookupEnv(key); exists {
		// Split by comma and trim whitespace
		parts := strings.Split(valueStr, ",")
		result := make([]string, 0, len(parts))
		for _, v := range parts {
			trimmed := strings.TrimSpace(v)
			if trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return defaultVal
}

func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// getEnvAsIntInRange falls back to defaultVal when the value is outside [lo, hi]
func getEnvAsIntInRange(key string, defaultVal, lo, hi int) int {
	value := getEnvAsInt(key, defaultVal)
	if value < lo || value > hi {
		return defaultVal
	}
	return value
}

// getEnvAsDurationInRange falls back to defaultVal when the value is outside (0, hi]
func getEnvAsDurationInRange(key string, defaultVal, hi time.Duration) time.Duration {
	value := getEnvAsTimeDuration(key, defaultVal)
	if value <= 0 || value > hi {
		return defaultVal
	}
	return value
}

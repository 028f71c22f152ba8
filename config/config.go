package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// New snapshots the process environment into a key/value map.
func New() map[string]string {
	return FromEnviron(os.Environ())
}

// FromEnviron builds a config map from KEY=VALUE entries.
func FromEnviron(environ []string) map[string]string {
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}

	return asBool
}

// GetDuration reads an integer number of units (e.g. time.Millisecond).
func GetDuration(config map[string]string, key string, unit time.Duration, defaultValue time.Duration) time.Duration {
	n := GetInt(config, key, -1)
	if n < 0 {
		return defaultValue
	}
	return time.Duration(n) * unit
}

// GetList splits a comma separated value, dropping empty items.
func GetList(config map[string]string, key string, defaultValue []string) []string {
	raw := GetString(config, key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Missing returns the keys that are absent or empty.
func Missing(config map[string]string, keys ...string) []string {
	var missing []string
	for _, key := range keys {
		if GetString(config, key, "") == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

package config

import "os"

// Getenv returns the value of key, or fallback when unset or empty.
func Getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package env

import "os"

// Get returns the environment variable's value, or fallback when unset
// or empty. Used for PaaS-injected vars that live outside the
// TELAFOME_ config prefix.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

package instance

import "os"

// GetID returns the PaaS-assigned process identifier, or "local" when
// running outside a dyno.
func GetID() string {
	if id := os.Getenv("DYNO"); id != "" {
		return id
	}
	return "local"
}

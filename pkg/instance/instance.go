package instance

import (
	"os"

	"github.com/angelmondragon/inventory-insights/pkg/env"
)

const fallbackID = "local"

// GetID identifies this process in logs: INSIGHTS_INSTANCE_ID, then the platform's DYNO, then the hostname.
func GetID() string {
	if id := env.First("", "INSIGHTS_INSTANCE_ID", "DYNO"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return fallbackID
}

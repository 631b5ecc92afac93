package arr

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ServiceType identifies which download-automation manager a client talks to.
type ServiceType string

const (
	ServiceSonarr ServiceType = "sonarr"
	ServiceRadarr ServiceType = "radarr"
)

// ParseServiceType parses a stored or user-supplied service name.
func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(strings.ToLower(strings.TrimSpace(s))) {
	case ServiceSonarr:
		return ServiceSonarr, nil
	case ServiceRadarr:
		return ServiceRadarr, nil
	default:
		return "", fmt.Errorf("unknown service type: %q", s)
	}
}

func (s ServiceType) Valid() bool {
	return s == ServiceSonarr || s == ServiceRadarr
}

// SupportsBulkUnmonitor reports whether the service exposes a bulk monitor
// mutation endpoint. Sonarr has episode/monitor; Radarr has no movie
// equivalent so movies are unmonitored one at a time.
func (s ServiceType) SupportsBulkUnmonitor() bool {
	return s == ServiceSonarr
}

// Title returns the service name for display, e.g. "Sonarr".
func (s ServiceType) Title() string {
	caser := cases.Title(language.English)
	return caser.String(string(s))
}

func (s ServiceType) String() string {
	return string(s)
}

package arr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseServiceType(t *testing.T) {
	tests := []struct {
		input   string
		want    ServiceType
		wantErr bool
	}{
		{"sonarr", ServiceSonarr, false},
		{"radarr", ServiceRadarr, false},
		{"Sonarr", ServiceSonarr, false},
		{" RADARR ", ServiceRadarr, false},
		{"lidarr", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseServiceType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceTypeCapabilities(t *testing.T) {
	assert.True(t, ServiceSonarr.SupportsBulkUnmonitor())
	assert.False(t, ServiceRadarr.SupportsBulkUnmonitor())
}

func TestServiceTypeValid(t *testing.T) {
	assert.True(t, ServiceSonarr.Valid())
	assert.True(t, ServiceRadarr.Valid())
	assert.False(t, ServiceType("plex").Valid())
	assert.False(t, ServiceType("").Valid())
}

func TestServiceTypeTitle(t *testing.T) {
	assert.Equal(t, "Sonarr", ServiceSonarr.Title())
	assert.Equal(t, "Radarr", ServiceRadarr.Title())
}

package namabar

import (
	"os"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey    = "NAMABAR_API_KEY"
	EnvServiceID = "NAMABAR_SERVICE_ID"
	EnvBaseURL   = "NAMABAR_BASE_URL"
)

// Config holds the settings a Client is created from.
type Config struct {
	// APIKey is sent in the X-API-Key header. Required.
	APIKey string `json:"api_key" yaml:"api_key"`
	// ServiceID is the default messaging or verify service, returned by
	// Client.ServiceID for use as the serviceId argument
	ServiceID string `json:"service_id,omitempty" yaml:"service_id,omitempty"`
	// BaseURL overrides DefaultBaseURL
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// ConfigFromEnv builds a Config from NAMABAR_API_KEY, NAMABAR_SERVICE_ID and
// NAMABAR_BASE_URL. Unset variables leave the field empty.
func ConfigFromEnv() Config {
	return Config{
		APIKey:    strings.TrimSpace(os.Getenv(EnvAPIKey)),
		ServiceID: strings.TrimSpace(os.Getenv(EnvServiceID)),
		BaseURL:   strings.TrimSpace(os.Getenv(EnvBaseURL)),
	}
}

package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/internal/config"
)

// appInfoService exposes build metadata configured at startup.
type appInfoService struct {
	version string
}

// NewAppInfoService constructs an AppInfoService from application config.
func NewAppInfoService(cfg config.App) AppInfoService {
	return &appInfoService{version: cfg.Version}
}

// GetAppVersion returns the configured application version, or "N/A" when
// the build was not stamped.
func (s *appInfoService) GetAppVersion(_ context.Context) string {
	if s.version == "" {
		return "N/A"
	}

	return s.version
}

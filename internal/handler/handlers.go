package handler

import (
	"github.com/MKhiriev/go-auth-service/internal/config"
	httphandler "github.com/MKhiriev/go-auth-service/internal/handler/http"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
)

// Handlers aggregates all transport handlers of the application.
type Handlers struct {
	HTTP *httphandler.Handler
}

// NewHandlers wires the transport layer over the given services.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: httphandler.NewHandler(services, cfg, logger),
	}
}

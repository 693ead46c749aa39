package http

import (
	"time"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
)

type Handler struct {
	services *service.Services

	// tokenDuration bounds both the JWT expiry and the cookie Max-Age so
	// the browser drops the cookie when the token stops verifying.
	tokenDuration time.Duration

	// clientOrigin is the single browser origin allowed to make
	// credentialed cross-origin requests.
	clientOrigin string

	// secureCookies marks the session cookie Secure + SameSite=None for
	// cross-site HTTPS deployments.
	secureCookies bool

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		tokenDuration:  cfg.App.TokenDuration,
		clientOrigin:   cfg.Server.ClientOrigin,
		secureCookies:  cfg.Server.SecureCookies,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

package service

import (
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
)

// Services aggregates every business-logic service handed to the transport
// layer.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	AvatarService  AvatarService
	AppInfoService AppInfoService

	// AvatarMirrorer is the concrete avatar service exposed separately for
	// the background mirror worker.
	AvatarMirrorer *avatarService
}

// NewServices wires all services over the given repositories.
func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	avatarSvc := NewAvatarService(repos.AvatarStorage, repos.UserRepository, cfg.Avatar.MirrorQueueSize, log)

	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, avatarSvc, cfg.App, log),
		UserService:    NewUserService(repos.UserRepository, cfg.App, log),
		AvatarService:  avatarSvc,
		AppInfoService: NewAppInfoService(cfg.App),
		AvatarMirrorer: avatarSvc,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// placeholderPasswordLength sizes the random password assigned to accounts
// created through OAuth. Such accounts have no usable password and must keep
// signing in through the provider.
const placeholderPasswordLength = 32

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, OAuth sign-in,
// and JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// avatarService schedules mirroring of provider avatars for accounts
	// created through OAuth.
	avatarService AvatarService

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// defaultAvatarURL is assigned to password-based accounts at creation.
	defaultAvatarURL string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, avatarService AvatarService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		avatarService:    avatarService,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		bcryptCost:       cfg.BcryptCost,
		defaultAvatarURL: cfg.DefaultAvatarURL,
		logger:           logger,
	}
}

// SignUp creates a new password-based account.
//
// It validates that username, email, and password are all non-empty, hashes
// the password with bcrypt, and delegates persistence to the UserRepository.
// The email is lowercased before storage so lookups stay case-insensitive.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrEmailAlreadyExists / store.ErrUsernameAlreadyExists if the
//     unique constraints reject the insert.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:             uuid.New(),
		Username:       req.Username,
		Email:          normalizeEmail(req.Email),
		PasswordHash:   passwordHash,
		ProfilePicture: a.defaultAvatarURL,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// SignIn authenticates an existing account by email and password.
//
// Both the missing-account and wrong-password cases collapse into
// ErrInvalidCredentials so that the response does not reveal whether the
// email is registered.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid signin data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", req.Email).Msg("signin attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, foundUser.PasswordHash) {
		log.Warn().Str("id", foundUser.ID.String()).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// GoogleAuth signs a user in with an identity asserted by Google.
//
// An existing account with the provider's email is treated as a plain login;
// the stored password is ignored entirely. Otherwise a new account is
// created with a username derived from the display name plus a random
// suffix, an unguessable bcrypt-hashed placeholder password, and the
// provider's avatar. The provider avatar is mirrored into the bucket in the
// background.
func (a *authService) GoogleAuth(ctx context.Context, req models.GoogleAuthRequest) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" {
		log.Error().Msg("oauth identity without email")
		return models.User{}, false, ErrInvalidDataProvided
	}

	email := normalizeEmail(req.Email)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		return foundUser, false, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, false, fmt.Errorf("user search by email failed: %w", err)
	}

	created, err := a.createOAuthUser(ctx, req, email)
	if err != nil {
		return models.User{}, false, err
	}

	if req.Photo != "" {
		a.avatarService.MirrorProviderAvatar(created.ID, req.Photo)
	}

	return created, true, nil
}

func (a *authService) createOAuthUser(ctx context.Context, req models.GoogleAuthRequest, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	username, err := utils.UsernameFromDisplayName(req.Name)
	if err != nil {
		log.Err(err).Msg("username generation failed")
		return models.User{}, fmt.Errorf("username generation failed: %w", err)
	}

	placeholder, err := utils.RandomString(placeholderPasswordLength)
	if err != nil {
		log.Err(err).Msg("placeholder password generation failed")
		return models.User{}, fmt.Errorf("placeholder password generation failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(placeholder, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	profilePicture := req.Photo
	if profilePicture == "" {
		profilePicture = a.defaultAvatarURL
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		PasswordHash:   passwordHash,
		ProfilePicture: profilePicture,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("oauth user creation ended with error")
		return models.User{}, fmt.Errorf("oauth user creation ended with error: %w", err)
	}

	log.Info().Str("id", created.ID.String()).Msg("oauth account created")
	return created, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// issuer, and expiry. Failures are normalised so that callers never inspect
// low-level JWT errors: expiry maps to ErrTokenIsExpired, everything else to
// ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// normalizeEmail lowercases and trims an email so that the unique constraint
// treats addresses case-insensitively.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

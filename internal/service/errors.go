package service

import "errors"

var (
	// ErrInvalidDataProvided indicates a request that fails basic input
	// validation (missing or empty required fields).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password. The two cases are deliberately indistinguishable so
	// that responses do not reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpired indicates a session token past its expiry claim.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid indicates a malformed or tampered session token.
	ErrTokenIsInvalid = errors.New("token is invalid")

	// ErrTokenCreationFailed indicates JWT generation failed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUnsupportedAvatarType indicates an avatar upload whose content
	// type is not an image.
	ErrUnsupportedAvatarType = errors.New("unsupported avatar content type")
)

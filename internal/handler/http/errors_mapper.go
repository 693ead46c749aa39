package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// knownError pairs a sentinel with the HTTP status and the client-safe
// message it maps to. Messages never restate internal error text verbatim:
// what the client may learn is decided here, in one place.
type knownError struct {
	status  int
	message string
}

var errorStatusMap = map[error]knownError{
	service.ErrInvalidDataProvided:   {http.StatusBadRequest, "invalid data provided"},
	service.ErrInvalidCredentials:    {http.StatusUnauthorized, "invalid email or password"},
	service.ErrTokenIsExpired:        {http.StatusUnauthorized, "session expired"},
	service.ErrTokenIsInvalid:        {http.StatusUnauthorized, "invalid session"},
	service.ErrUnsupportedAvatarType: {http.StatusBadRequest, "avatar must be an image"},

	// A duplicate email is deliberately distinguishable so the signup form
	// can point the user at the sign-in page; a duplicate username stays
	// generic.
	store.ErrEmailAlreadyExists:    {http.StatusConflict, "email already registered"},
	store.ErrUsernameAlreadyExists: {http.StatusConflict, "duplicate field value"},
	store.ErrNoUserWasFound:        {http.StatusNotFound, "user not found"},
	store.ErrAvatarStorageDisabled: {http.StatusServiceUnavailable, "avatar storage is not available"},

	ErrNoSessionCookie:  {http.StatusUnauthorized, "unauthorized"},
	ErrInvalidUserID:    {http.StatusBadRequest, "invalid user id"},
	ErrNotResourceOwner: {http.StatusForbidden, "you can only modify your own account"},
}

// writeAPIError maps err onto the uniform error envelope
// {success:false, message, statusCode} and writes it. Unrecognised errors
// collapse into 500 with a generic message so no internal detail leaks.
func writeAPIError(w http.ResponseWriter, err error) {
	for sentinel, known := range errorStatusMap {
		if errors.Is(err, sentinel) {
			writeErrorEnvelope(w, known.status, known.message)
			return
		}
	}

	writeErrorEnvelope(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func writeErrorEnvelope(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Success:    false,
		Message:    message,
		StatusCode: statusCode,
	}, statusCode)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "access_token"

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorEnvelope(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already taken")
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
		}
		writeAPIError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeAPIError(w, err)
		return
	}

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorEnvelope(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
		}
		writeAPIError(w, err)
		return
	}

	log.Debug().Str("id", foundUser.ID.String()).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeAPIError(w, err)
		return
	}

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) googleAuth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.GoogleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorEnvelope(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	user, created, err := h.services.AuthService.GoogleAuth(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
		default:
			log.Err(err).Msg("unexpected error occurred during oauth login")
		}
		writeAPIError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeAPIError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	h.setSessionCookie(w, token.SignedString)
	utils.WriteJSON(w, user, status)
}

// signOut clears the session cookie. Idempotent: there is no server-side
// session state to invalidate, validity of an already-copied token is bound
// only to its expiry.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteJSON(w, map[string]string{"message": "signout success"}, http.StatusOK)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: h.cookieSameSite(),
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: h.cookieSameSite(),
	})
}

// cookieSameSite returns SameSite=None for secure cross-site deployments
// (the browser requires Secure alongside None) and Lax otherwise.
func (h *Handler) cookieSameSite() http.SameSite {
	if h.secureCookies {
		return http.SameSiteNoneMode
	}

	return http.SameSiteLaxMode
}

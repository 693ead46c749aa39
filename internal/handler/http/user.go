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

// maxAvatarSize bounds avatar uploads to 5 MiB.
const maxAvatarSize = 5 << 20

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeAPIError(w, ErrNoSessionCookie)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeErrorEnvelope(w, http.StatusBadRequest, "invalid JSON was passed")
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
		case errors.Is(err, store.ErrEmailAlreadyExists) || errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("duplicate field on update")
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("user not found")
		default:
			log.Err(err).Msg("unexpected error occurred during user update")
		}
		writeAPIError(w, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeAPIError(w, ErrNoSessionCookie)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("user not found")
		default:
			log.Err(err).Msg("unexpected error occurred during user deletion")
		}
		writeAPIError(w, err)
		return
	}

	// The account is gone, so the session cookie has nothing left to prove.
	h.clearSessionCookie(w)
	utils.WriteJSON(w, map[string]string{"message": "user has been deleted"}, http.StatusOK)
}

func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeAPIError(w, ErrNoSessionCookie)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeErrorEnvelope(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		log.Err(err).Msg("avatar file is missing")
		writeErrorEnvelope(w, http.StatusBadRequest, "avatar file is missing")
		return
	}
	defer file.Close()

	updatedUser, err := h.services.AvatarService.UploadAvatar(ctx, userID, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedAvatarType):
			log.Err(err).Msg("unsupported avatar content type")
		case errors.Is(err, store.ErrAvatarStorageDisabled):
			log.Err(err).Msg("avatar storage is not configured")
		default:
			log.Err(err).Msg("unexpected error occurred during avatar upload")
		}
		writeAPIError(w, err)
		return
	}

	utils.WriteJSON(w, models.AvatarResponse{URL: updatedUser.ProfilePicture}, http.StatusOK)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/safepass/safepass/internal/logger"
	"github.com/safepass/safepass/internal/service"
	"github.com/safepass/safepass/internal/store"
	"github.com/safepass/safepass/internal/utils"
	"github.com/safepass/safepass/models"
)

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	credentials, err := h.services.CredentialService.GetAllCredentials(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing credentials failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, credentials)
}

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var credential models.Credential
	if err := json.NewDecoder(r.Body).Decode(&credential); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// Ownership comes from the token, never from the request body.
	credential.UserID = userID
	credential.ID = ""

	saved, err := h.services.CredentialService.CreateCredential(ctx, credential)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid credential data provided")
			http.Error(w, "invalid credential data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("credential creation failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	credential, err := h.services.CredentialService.GetCredential(ctx, userID, chi.URLParam(r, "credentialID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid credential id provided")
			http.Error(w, "invalid credential id provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCredentialNotFound):
			http.Error(w, "credential not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("credential lookup failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, credential)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.CredentialUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	update.ID = chi.URLParam(r, "credentialID")
	update.UserID = userID

	updated, err := h.services.CredentialService.UpdateCredential(ctx, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid update data provided")
			http.Error(w, "invalid update data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCredentialNotFound):
			http.Error(w, "credential not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("credential update failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	err := h.services.CredentialService.DeleteCredential(ctx, userID, chi.URLParam(r, "credentialID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid credential id provided")
			http.Error(w, "invalid credential id provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCredentialNotFound):
			http.Error(w, "credential not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("credential deletion failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

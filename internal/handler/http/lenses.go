package http

import (
	"encoding/json"
	"net/http"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/utils"
	"github.com/photogear/camera-catalog/models"
)

func (h *Handler) createLens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var lens models.LensCreate
	if err := json.NewDecoder(r.Body).Decode(&lens); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.LensService.CreateLens(ctx, lens)
	if err != nil {
		log.Err(err).Str("model", lens.Model).Msg("lens creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listLenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	lenses, err := h.services.LensService.ListLenses(ctx)
	if err != nil {
		log.Err(err).Msg("listing lenses failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, lenses, http.StatusOK)
}

func (h *Handler) getLens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "invalid lens id", http.StatusBadRequest)
		return
	}

	lens, err := h.services.LensService.GetLens(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("lens lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, lens, http.StatusOK)
}

func (h *Handler) updateLens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "invalid lens id", http.StatusBadRequest)
		return
	}

	var update models.LensUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.LensService.UpdateLens(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("lens update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteLens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "invalid lens id", http.StatusBadRequest)
		return
	}

	if err := h.services.LensService.DeleteLens(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("lens deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

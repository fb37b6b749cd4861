package http

import (
	"encoding/json"
	"net/http"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/utils"
	"github.com/photogear/camera-catalog/models"
)

func (h *Handler) createCamera(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var camera models.CameraCreate
	if err := json.NewDecoder(r.Body).Decode(&camera); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CameraService.CreateCamera(ctx, camera)
	if err != nil {
		log.Err(err).Str("model", camera.Model).Msg("camera creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listCameras(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cameras, err := h.services.CameraService.ListCameras(ctx)
	if err != nil {
		log.Err(err).Msg("listing cameras failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cameras, http.StatusOK)
}

func (h *Handler) getCamera(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "invalid camera id", http.StatusBadRequest)
		return
	}

	camera, err := h.services.CameraService.GetCamera(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("camera lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, camera, http.StatusOK)
}

func (h *Handler) updateCamera(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "invalid camera id", http.StatusBadRequest)
		return
	}

	var update models.CameraUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.CameraService.UpdateCamera(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("camera update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCamera(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "invalid camera id", http.StatusBadRequest)
		return
	}

	if err := h.services.CameraService.DeleteCamera(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("camera deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

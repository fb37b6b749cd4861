package http

import (
	"encoding/json"
	"net/http"

	"github.com/photogear/camera-catalog/internal/logger"
	"github.com/photogear/camera-catalog/internal/utils"
	"github.com/photogear/camera-catalog/models"
)

func (h *Handler) createBrand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var brand models.BrandCreate
	if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.BrandService.CreateBrand(ctx, brand)
	if err != nil {
		log.Err(err).Str("brand", brand.BrandNameEN).Msg("brand creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	brands, err := h.services.BrandService.ListBrands(ctx)
	if err != nil {
		log.Err(err).Msg("listing brands failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, brands, http.StatusOK)
}

func (h *Handler) getBrand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "invalid brand id", http.StatusBadRequest)
		return
	}

	brand, err := h.services.BrandService.GetBrand(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("brand lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, brand, http.StatusOK)
}

func (h *Handler) updateBrand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "invalid brand id", http.StatusBadRequest)
		return
	}

	var update models.BrandUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.BrandService.UpdateBrand(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("brand update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteBrand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, "invalid brand id", http.StatusBadRequest)
		return
	}

	if err := h.services.BrandService.DeleteBrand(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("brand deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

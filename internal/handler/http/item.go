package http

import (
	"encoding/json"
	"net/http"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/utils"
	"github.com/evaldesk/evaldesk/models"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var in models.ItemIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createItem").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)

	items, err := h.services.ItemService.GetAll(r.Context(), page, size)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	var in models.ItemIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.updateItem").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

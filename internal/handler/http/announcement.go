package http

import (
	"encoding/json"
	"net/http"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/utils"
	"github.com/evaldesk/evaldesk/models"
)

func (h *Handler) createAnnouncement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var in models.AnnouncementIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createAnnouncement").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	announcement, err := h.services.AnnouncementService.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, announcement, http.StatusCreated)
}

func (h *Handler) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)

	announcements, err := h.services.AnnouncementService.GetAll(r.Context(), page, size)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, announcements, http.StatusOK)
}

func (h *Handler) getAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	announcement, err := h.services.AnnouncementService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, announcement, http.StatusOK)
}

func (h *Handler) updateAnnouncement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	var in models.AnnouncementIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.updateAnnouncement").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	announcement, err := h.services.AnnouncementService.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, announcement, http.StatusOK)
}

func (h *Handler) deleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	announcement, err := h.services.AnnouncementService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, announcement, http.StatusOK)
}

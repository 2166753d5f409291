package http

import (
	"encoding/json"
	"net/http"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/utils"
	"github.com/evaldesk/evaldesk/models"
)

func (h *Handler) createEvaluation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var in models.EvaluationIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createEvaluation").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	evaluation, err := h.services.EvaluationService.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, evaluation, http.StatusCreated)
}

func (h *Handler) listEvaluations(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)

	evaluations, err := h.services.EvaluationService.GetAll(r.Context(), page, size)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, evaluations, http.StatusOK)
}

func (h *Handler) getEvaluation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	evaluation, err := h.services.EvaluationService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, evaluation, http.StatusOK)
}

func (h *Handler) updateEvaluation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	var update models.EvaluationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateEvaluation").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	evaluation, err := h.services.EvaluationService.Update(r.Context(), id, update)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, evaluation, http.StatusOK)
}

func (h *Handler) deleteEvaluation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	evaluation, err := h.services.EvaluationService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, evaluation, http.StatusOK)
}

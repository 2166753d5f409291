package http

import (
	"encoding/json"
	"net/http"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/utils"
	"github.com/evaldesk/evaldesk/models"
)

func (h *Handler) createEvaluationResult(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var in models.EvaluationResultIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createEvaluationResult").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	result, err := h.services.EvaluationResultService.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) listEvaluationResults(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)

	results, err := h.services.EvaluationResultService.GetAll(r.Context(), page, size)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

func (h *Handler) getEvaluationResult(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	result, err := h.services.EvaluationResultService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// getEvaluationResultAverages answers the per-category rating aggregation of
// one submitted evaluation.
func (h *Handler) getEvaluationResultAverages(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	averages, err := h.services.EvaluationResultService.GetCategoryAverages(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, averages, http.StatusOK)
}

func (h *Handler) listEvaluationResultsByEvaluation(w http.ResponseWriter, r *http.Request) {
	evaluationID, err := idParam(r, "evaluationID")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	page, size := pageParams(r)

	results, err := h.services.EvaluationResultService.GetAllByEvaluationID(r.Context(), evaluationID, page, size)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

func (h *Handler) listEvaluationResultsByEvaluationAndAdmin(w http.ResponseWriter, r *http.Request) {
	evaluationID, err := idParam(r, "evaluationID")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	adminID, err := idParam(r, "adminID")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	page, size := pageParams(r)

	results, err := h.services.EvaluationResultService.GetAllByEvaluationAndAdminID(r.Context(), evaluationID, adminID, page, size)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

func (h *Handler) listEvaluationResultsByTeacher(w http.ResponseWriter, r *http.Request) {
	teacherID, err := idParam(r, "teacherID")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	page, size := pageParams(r)

	results, err := h.services.EvaluationResultService.GetAllByTeacherID(r.Context(), teacherID, page, size)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

func (h *Handler) updateEvaluationResult(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	var update models.EvaluationResultUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateEvaluationResult").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	result, err := h.services.EvaluationResultService.Update(r.Context(), id, update)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteEvaluationResult(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	result, err := h.services.EvaluationResultService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

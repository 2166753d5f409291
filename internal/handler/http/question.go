package http

import (
	"encoding/json"
	"net/http"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/utils"
	"github.com/evaldesk/evaldesk/models"
)

func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var in models.QuestionIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createQuestion").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	question, err := h.services.QuestionService.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, question, http.StatusCreated)
}

func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)

	questions, err := h.services.QuestionService.GetAll(r.Context(), page, size)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}

func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	question, err := h.services.QuestionService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, question, http.StatusOK)
}

func (h *Handler) listQuestionsByEvaluation(w http.ResponseWriter, r *http.Request) {
	evaluationID, err := idParam(r, "evaluationID")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	page, size := pageParams(r)

	questions, err := h.services.QuestionService.GetAllByEvaluationID(r.Context(), evaluationID, page, size)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}

func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	var update models.QuestionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateQuestion").Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed.", http.StatusBadRequest)
		return
	}

	question, err := h.services.QuestionService.Update(r.Context(), id, update)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, question, http.StatusOK)
}

func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		utils.WriteDetail(w, "Invalid id parameter.", http.StatusBadRequest)
		return
	}

	question, err := h.services.QuestionService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, question, http.StatusOK)
}

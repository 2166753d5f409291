package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/v1", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/login/token", h.login)
			r.Post("/auth/password/reset", h.resetPassword)
			r.Post("/user", h.createUser)
		})

		// routes with authorization
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/password/reset-token", h.createResetToken)

			r.Get("/user", h.listUsers)
			r.Get("/user/{id}", h.getUser)
			r.Put("/user/{id}", h.updateUser)
			r.Delete("/user/{id}", h.deleteUser)

			r.Post("/evaluation", h.createEvaluation)
			r.Get("/evaluation", h.listEvaluations)
			r.Get("/evaluation/{id}", h.getEvaluation)
			r.Put("/evaluation/{id}", h.updateEvaluation)
			r.Delete("/evaluation/{id}", h.deleteEvaluation)

			r.Post("/evaluation-result", h.createEvaluationResult)
			r.Get("/evaluation-result", h.listEvaluationResults)
			r.Get("/evaluation-result/{id}", h.getEvaluationResult)
			r.Get("/evaluation-result/{id}/averages", h.getEvaluationResultAverages)
			r.Get("/evaluation-result/evaluation/{evaluationID}", h.listEvaluationResultsByEvaluation)
			r.Get("/evaluation-result/evaluation/{evaluationID}/admin/{adminID}", h.listEvaluationResultsByEvaluationAndAdmin)
			r.Get("/evaluation-result/teacher/{teacherID}", h.listEvaluationResultsByTeacher)
			r.Put("/evaluation-result/{id}", h.updateEvaluationResult)
			r.Delete("/evaluation-result/{id}", h.deleteEvaluationResult)

			r.Post("/question", h.createQuestion)
			r.Get("/question", h.listQuestions)
			r.Get("/question/{id}", h.getQuestion)
			r.Get("/question/evaluation/{evaluationID}", h.listQuestionsByEvaluation)
			r.Put("/question/{id}", h.updateQuestion)
			r.Delete("/question/{id}", h.deleteQuestion)

			r.Post("/question-result", h.createQuestionResult)
			r.Get("/question-result", h.listQuestionResults)
			r.Get("/question-result/{id}", h.getQuestionResult)
			r.Get("/question-result/evaluation-result/{evaluationResultID}", h.listQuestionResultsByEvaluationResult)
			r.Put("/question-result/{id}", h.updateQuestionResult)
			r.Delete("/question-result/{id}", h.deleteQuestionResult)

			r.Post("/announcement", h.createAnnouncement)
			r.Get("/announcement", h.listAnnouncements)
			r.Get("/announcement/{id}", h.getAnnouncement)
			r.Put("/announcement/{id}", h.updateAnnouncement)
			r.Delete("/announcement/{id}", h.deleteAnnouncement)

			r.Post("/item", h.createItem)
			r.Get("/item", h.listItems)
			r.Get("/item/{id}", h.getItem)
			r.Put("/item/{id}", h.updateItem)
			r.Delete("/item/{id}", h.deleteItem)
		})
	})

	return router
}

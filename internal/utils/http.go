package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/evaldesk/evaldesk/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP
// response.
//
// It sets the "Content-Type" header to "application/json" and writes the
// provided HTTP status code before sending the response body. If marshaling
// fails, it responds with 500 Internal Server Error and returns a wrapped
// error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteDetail writes the generic error body {"detail": ...} with the given
// status code. Handlers use it for every client-visible failure so that
// internal error detail never leaks into responses.
func WriteDetail(w http.ResponseWriter, detail string, statusCode int) {
	//nolint:errcheck // a failed error write leaves nothing further to do
	WriteJSON(w, models.DetailResponse{Detail: detail}, statusCode)
}

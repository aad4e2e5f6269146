package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it as the HTTP response body.
//
// It sets the "Content-Type" header to "application/json" and writes the
// provided status code before the body. Marshaling happens before any header
// is written, so a marshal failure degrades to a plain 500 with a wrapped
// error returned, never a half-written JSON body.
//
// Every success response of the API goes through this helper: user profiles,
// issued keys, memories, the info and health payloads.
//
// Example usage:
//
//	WriteJSON(w, memory, http.StatusCreated)
//	WriteJSON(w, models.HealthResponse{Status: "healthy"}, http.StatusOK)
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

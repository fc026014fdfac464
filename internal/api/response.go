// Helper functions for sending standardized JSON responses.

package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope wraps every successful response. Optional members are left out
// when they do not apply to the endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Query   string `json:"query,omitempty"`
	Chapter string `json:"chapter,omitempty"`
	Page    int    `json:"page,omitempty"`
	Filters any    `json:"filters,omitempty"`
	Data    any    `json:"data"`
	Total   *int   `json:"total,omitempty"`
	Usage   any    `json:"usage,omitempty"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func total(n int) *int { return &n }

// RespondWithJSON writes a JSON response with the given status code and payload.
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal response: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to marshal response")
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithError writes a standardized JSON error response.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithFailure(w, code, message, "")
}

// RespondWithFailure writes an error response carrying a detail message.
func RespondWithFailure(w http.ResponseWriter, code int, message, detail string) {
	RespondWithJSON(w, code, ErrorResponse{Success: false, Error: message, Message: detail})
}

// respondUpstreamError logs a failed catalog operation and reports it as a
// server error with the cause as detail.
func respondUpstreamError(w http.ResponseWriter, message string, err error) {
	log.Printf("%s: %v", message, err)
	RespondWithFailure(w, http.StatusInternalServerError, message, err.Error())
}

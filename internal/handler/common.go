package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, ErrorResponse{Error: message})
}

// respondWithCodedError sends an error response carrying a machine-readable
// code and detail lines
func respondWithCodedError(w http.ResponseWriter, status int, code, message string, details []string) {
	resp := ErrorResponse{Error: message, Code: &code}
	if len(details) > 0 {
		resp.Details = &details
	}
	respondWithJSON(w, status, resp)
}

// respondWithJSON encodes payload as the response body. The status line is
// already written when encoding fails, so the failure is only logged.
func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "status", status, "error", err)
	}
}

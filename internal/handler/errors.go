package handlers

import (
	"encoding/json"
	"net/http"
)

// MsgResponse is the shape of every error body and of plain-message
// success bodies like the delete confirmation.
type MsgResponse struct {
	Msg string `json:"msg"`
}

// WriteError sends a JSON error response.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(MsgResponse{Msg: message})
}

// WriteSuccess sends a JSON response with the given status.
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

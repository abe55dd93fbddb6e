package helpers

import (
	"encoding/json"
	"net/http"
)

// Messages surfaced to API callers. Storage failures always map to
// MsgInternalError; the underlying error is only logged server-side.
const (
	MsgInvalidID     = "Invalid ID"
	MsgInvalidInput  = "Invalid input"
	MsgEventNotFound = "Event not found"
	MsgEventDeleted  = "Event deleted"
	MsgInternalError = "Internal Server Error"
)

// APIResponse is the uniform envelope returned by every endpoint.
// On success: Success is true and Data (or Message) is set. On failure:
// Success is false and Error carries a human-readable message.
// swagger:model APIResponse
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode,
// and encodes a success envelope carrying data.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data})
}

// WriteJSONMessage writes a success envelope carrying a confirmation message
// instead of data.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Success: true, Message: message})
}

// WriteJSONError writes a failure envelope with the given message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, statusCode int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

package httpx

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every confirmation and error reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError describes a single invalid payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse is the body of a 400 payload-validation reply.
type ValidationResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONMessage writes a {"message": ...} body with the given status code.
func JSONMessage(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

// JSONValidationFailed writes the fixed payload-validation failure reply.
func JSONValidationFailed(w http.ResponseWriter, details []FieldError) {
	JSON(w, http.StatusBadRequest, ValidationResponse{
		Message: "Input payload validation failed",
		Errors:  details,
	})
}

// JSONServerError writes a generic 500 reply.
func JSONServerError(w http.ResponseWriter) {
	JSONMessage(w, http.StatusInternalServerError, "server error")
}

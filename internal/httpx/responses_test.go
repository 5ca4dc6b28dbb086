package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONMessage(t *testing.T) {
	w := httptest.NewRecorder()

	JSONMessage(w, http.StatusCreated, "Dune was added!")

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type application/json")
	}

	var response MessageResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Message != "Dune was added!" {
		t.Errorf("Expected message to round-trip, got %q", response.Message)
	}
}

func TestJSONValidationFailed(t *testing.T) {
	w := httptest.NewRecorder()
	details := []FieldError{
		{Field: "title", Message: "Title is required"},
	}

	JSONValidationFailed(w, details)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response ValidationResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Message != "Input payload validation failed" {
		t.Errorf("Expected fixed validation message, got %q", response.Message)
	}

	if len(response.Errors) != 1 || response.Errors[0].Field != "title" {
		t.Errorf("Expected title field error, got %+v", response.Errors)
	}
}

func TestJSONServerError(t *testing.T) {
	w := httptest.NewRecorder()

	JSONServerError(w)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"booker/internal/book"
	"booker/internal/user"
)

// StringPtr returns a pointer to s, for optional payload fields.
func StringPtr(s string) *string { return &s }

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }

// TestBook is a mock book for testing
var TestBook = book.Book{
	ID:        "0787133b-cb55-4a31-9480-1e04b7b72898",
	Title:     "The Omnivore's Dilemma",
	Author:    StringPtr("Michael Pollan"),
	Priority:  book.PriorityLow,
	Status:    book.StatusToRead,
	TypeRead:  book.TypeAudiobook,
	DateAdded: time.Now(),
}

// TestUser is a mock user for testing
var TestUser = user.User{
	ID:          1,
	Username:    "michael",
	Email:       "michael@mherman.org",
	Active:      true,
	CreatedDate: time.Now(),
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

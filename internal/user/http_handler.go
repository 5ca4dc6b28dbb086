package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"booker/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type payload struct {
	Username string `json:"username" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email,max=128"`
}

func decodePayload(w http.ResponseWriter, r *http.Request) (payload, bool) {
	var p payload
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&p); err != nil {
		httpx.JSONValidationFailed(w, nil)
		return payload{}, false
	}
	if details := httpx.ValidateStruct(p); details != nil {
		httpx.JSONValidationFailed(w, details)
		return payload{}, false
	}
	return p, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("User %s does not exist", raw))
		return 0, false
	}
	return id, true
}

// List handles GET /users
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONServerError(w)
		return
	}
	if users == nil {
		users = []User{}
	}
	httpx.JSON(w, http.StatusOK, users)
}

// Create handles POST /users
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	_, err := h.service.Create(r.Context(), p.Username, p.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			httpx.JSONMessage(w, http.StatusBadRequest, "Sorry. That email already exists.")
		default:
			httpx.JSONServerError(w)
		}
		return
	}

	httpx.JSONMessage(w, http.StatusCreated, fmt.Sprintf("%s was added!", p.Email))
}

// Get handles GET /users/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	u, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("User %d does not exist", id))
		default:
			httpx.JSONServerError(w)
		}
		return
	}

	httpx.JSON(w, http.StatusOK, u)
}

// Update handles PUT /users/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	_, err := h.service.Update(r.Context(), id, p.Username, p.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("User %d does not exist", id))
		case errors.Is(err, ErrDuplicateEmail):
			httpx.JSONMessage(w, http.StatusBadRequest, "Sorry. That email already exists.")
		default:
			httpx.JSONServerError(w)
		}
		return
	}

	httpx.JSONMessage(w, http.StatusOK, fmt.Sprintf("%d was updated!", id))
}

// Delete handles DELETE /users/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	u, err := h.service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("User %d does not exist", id))
		default:
			httpx.JSONServerError(w)
		}
		return
	}

	httpx.JSONMessage(w, http.StatusOK, fmt.Sprintf("%s was removed!", u.Email))
}

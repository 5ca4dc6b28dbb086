package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"booker/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// payload is the request body for POST /books and PUT /books/{id}. Every
// field except title is optional; enum fields reject unknown values before
// the store is touched.
type payload struct {
	Title      string     `json:"title" validate:"required"`
	Author     *string    `json:"author"`
	Genre      *string    `json:"genre"`
	Priority   *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	ReferredBy *string    `json:"referred_by"`
	Status     *string    `json:"status" validate:"omitempty,oneof=to_read reading read"`
	Category   *string    `json:"category"`
	Notes      *string    `json:"notes"`
	TypeRead   *string    `json:"type_read" validate:"omitempty,oneof=physical ebook audiobook"`
	Rating     *int       `json:"rating" validate:"omitempty,gte=1,lte=5"`
	DateRead   *time.Time `json:"date_read"`
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

// List handles GET /books
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} book.Book
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONServerError(w)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Create handles POST /books
// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ValidationResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	_, err := h.service.Create(r.Context(), p.Title, p.Author)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateTitle):
			httpx.JSONMessage(w, http.StatusBadRequest, "Sorry. That title already exists.")
		default:
			httpx.JSONServerError(w)
		}
		return
	}

	httpx.JSONMessage(w, http.StatusCreated, fmt.Sprintf("%s was added!", p.Title))
}

// Get handles GET /books/{id}
// @Summary Get a book
// @Tags books
// @Produce json
// @Success 200 {object} book.Book
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book %s does not exist", id))
		default:
			httpx.JSONServerError(w)
		}
		return
	}

	httpx.JSON(w, http.StatusOK, b)
}

// Update handles PUT /books/{id}
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Success 200 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	in := UpdateInput{
		Title:      p.Title,
		Author:     p.Author,
		Genre:      p.Genre,
		Priority:   p.Priority,
		ReferredBy: p.ReferredBy,
		Status:     p.Status,
		Category:   p.Category,
		Notes:      p.Notes,
		TypeRead:   p.TypeRead,
		Rating:     p.Rating,
		DateRead:   p.DateRead,
	}

	_, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book %s does not exist", id))
		case errors.Is(err, ErrDuplicateTitle):
			httpx.JSONMessage(w, http.StatusBadRequest, "Sorry. That book already exists.")
		default:
			httpx.JSONServerError(w)
		}
		return
	}

	httpx.JSONMessage(w, http.StatusOK, fmt.Sprintf("%s was updated!", id))
}

// Delete handles DELETE /books/{id}
// @Summary Remove a book
// @Tags books
// @Produce json
// @Success 200 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	b, err := h.service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book %s does not exist", id))
		default:
			httpx.JSONServerError(w)
		}
		return
	}

	httpx.JSONMessage(w, http.StatusOK, fmt.Sprintf("%s was removed!", b.Title))
}

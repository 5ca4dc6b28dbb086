package book

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(method, path, &buf)
	r.Header.Set("Content-Type", "application/json")
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("empty shelf is an empty array", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("books are serialized with every field", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return([]Book{
			{ID: "b1", Title: "Dune", Author: strPtr("Frank Herbert"), Priority: PriorityLow, Status: StatusToRead, TypeRead: TypeAudiobook},
		}, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var books []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
		require.Len(t, books, 1)
		assert.Equal(t, "Dune", books[0]["title"])
		assert.Equal(t, "Frank Herbert", books[0]["author"])
		assert.Nil(t, books[0]["rating"])
		assert.Equal(t, "to_read", books[0]["status"])
	})

	t.Run("store error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("created", func(t *testing.T) {
		mockRepo.EXPECT().GetByTitle(gomock.Any(), "The Omnivore's Dilemma").Return(Book{}, ErrNotFound)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *Book) error {
				b.ID = "b1"
				return nil
			})

		w := httptest.NewRecorder()
		handler.Create(w, newJSONRequest(t, http.MethodPost, "/books", map[string]string{
			"title":  "The Omnivore's Dilemma",
			"author": "Michael Pollan",
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "The Omnivore's Dilemma was added!", decodeBody(t, w)["message"])
	})

	t.Run("duplicate title", func(t *testing.T) {
		mockRepo.EXPECT().GetByTitle(gomock.Any(), "The Omnivore's Dilemma").
			Return(Book{ID: "b1", Title: "The Omnivore's Dilemma"}, nil)

		w := httptest.NewRecorder()
		handler.Create(w, newJSONRequest(t, http.MethodPost, "/books", map[string]string{
			"title":  "The Omnivore's Dilemma",
			"author": "Michael Pollan",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Sorry. That title already exists.", decodeBody(t, w)["message"])
	})

	t.Run("empty payload", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Create(w, newJSONRequest(t, http.MethodPost, "/books", map[string]string{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Input payload validation failed", decodeBody(t, w)["message"])
	})

	t.Run("unknown keys", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Create(w, newJSONRequest(t, http.MethodPost, "/books", map[string]string{
			"email": "john@example.com",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Input payload validation failed", decodeBody(t, w)["message"])
	})

	t.Run("rating bounds", func(t *testing.T) {
		for rating, wantStatus := range map[int]int{
			0: http.StatusBadRequest,
			6: http.StatusBadRequest,
			1: http.StatusCreated,
			5: http.StatusCreated,
		} {
			if wantStatus == http.StatusCreated {
				mockRepo.EXPECT().GetByTitle(gomock.Any(), gomock.Any()).Return(Book{}, ErrNotFound)
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			w := httptest.NewRecorder()
			handler.Create(w, newJSONRequest(t, http.MethodPost, "/books", map[string]interface{}{
				"title":  "Rated " + string(rune('0'+rating)),
				"rating": rating,
			}))

			assert.Equalf(t, wantStatus, w.Code, "rating=%d", rating)
		}
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "b1").
			Return(Book{ID: "b1", Title: "Dune", Priority: PriorityLow, Status: StatusToRead, TypeRead: TypeAudiobook}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/b1", nil)
		r.SetPathValue("id", "b1")
		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Dune", decodeBody(t, w)["title"])
	})

	t.Run("not found embeds the id", func(t *testing.T) {
		const id = "0787133b-cb55-4a31-9480-1e04b7b72898"
		mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/"+id, nil)
		r.SetPathValue("id", id)
		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book "+id+" does not exist", decodeBody(t, w)["message"])
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	current := Book{ID: "b1", Title: "Dune", Author: strPtr("Frank Herbert"), Priority: PriorityLow, Status: StatusToRead, TypeRead: TypeAudiobook}

	t.Run("updated", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "b1").Return(current, nil)
		mockRepo.EXPECT().GetByTitle(gomock.Any(), "Dune").Return(current, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b Book) (Book, error) {
				assert.Equal(t, "F. Herbert", *b.Author)
				return b, nil
			})

		w := httptest.NewRecorder()
		r := newJSONRequest(t, http.MethodPut, "/books/b1", map[string]string{
			"title":  "Dune",
			"author": "F. Herbert",
		})
		r.SetPathValue("id", "b1")
		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "b1 was updated!", decodeBody(t, w)["message"])
	})

	t.Run("duplicate title", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "b1").Return(current, nil)
		mockRepo.EXPECT().GetByTitle(gomock.Any(), "Hyperion").
			Return(Book{ID: "b2", Title: "Hyperion"}, nil)

		w := httptest.NewRecorder()
		r := newJSONRequest(t, http.MethodPut, "/books/b1", map[string]string{"title": "Hyperion"})
		r.SetPathValue("id", "b1")
		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Sorry. That book already exists.", decodeBody(t, w)["message"])
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := newJSONRequest(t, http.MethodPut, "/books/missing", map[string]string{"title": "Dune"})
		r.SetPathValue("id", "missing")
		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book missing does not exist", decodeBody(t, w)["message"])
	})

	t.Run("missing title fails validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := newJSONRequest(t, http.MethodPut, "/books/b1", map[string]string{"author": "Someone"})
		r.SetPathValue("id", "b1")
		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Input payload validation failed", decodeBody(t, w)["message"])
	})

	t.Run("bad enum value fails validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := newJSONRequest(t, http.MethodPut, "/books/b1", map[string]string{
			"title":  "Dune",
			"status": "abandoned",
		})
		r.SetPathValue("id", "b1")
		handler.Update(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo))

	t.Run("deleted message carries the title", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "b1").
			Return(Book{ID: "b1", Title: "The Omnivore's Dilemma"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/books/b1", nil)
		r.SetPathValue("id", "b1")
		handler.Delete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "The Omnivore's Dilemma was removed!", decodeBody(t, w)["message"])
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "missing").Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/books/missing", nil)
		r.SetPathValue("id", "missing")
		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Book missing does not exist", decodeBody(t, w)["message"])
	})
}

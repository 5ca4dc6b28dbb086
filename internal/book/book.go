package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateTitle is returned when another book already holds the title.
var ErrDuplicateTitle = errors.New("title already exists")

// Priority levels, lowest to highest.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Reading status values.
const (
	StatusToRead  = "to_read"
	StatusReading = "reading"
	StatusRead    = "read"
)

// Book format values.
const (
	TypePhysical  = "physical"
	TypeEbook     = "ebook"
	TypeAudiobook = "audiobook"
)

// Defaults applied when a book is created without the optional fields.
const (
	DefaultPriority = PriorityLow
	DefaultStatus   = StatusToRead
	DefaultTypeRead = TypeAudiobook
)

// Book represents a tracked book. Optional fields are pointers so they
// serialize as null when unset.
type Book struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Author     *string    `json:"author"`
	Genre      *string    `json:"genre"`
	DateAdded  time.Time  `json:"date_added"`
	Priority   string     `json:"priority"`
	ReferredBy *string    `json:"referred_by"`
	Status     string     `json:"status"`
	Category   *string    `json:"category"`
	Notes      *string    `json:"notes"`
	TypeRead   string     `json:"type_read"`
	Rating     *int       `json:"rating"`
	DateRead   *time.Time `json:"date_read"`
}

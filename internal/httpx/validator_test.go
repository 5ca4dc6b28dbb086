package httpx

import (
	"strings"
	"testing"
)

type TestStruct struct {
	Title    string  `validate:"required"`
	Email    string  `validate:"omitempty,email"`
	Priority *string `validate:"omitempty,oneof=low medium high"`
	Rating   *int    `validate:"omitempty,gte=1,lte=5"`
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func TestValidateStruct_ValidInput(t *testing.T) {
	s := TestStruct{
		Title:    "Dune",
		Email:    "test@example.com",
		Priority: strPtr("high"),
		Rating:   intPtr(4),
	}

	errors := ValidateStruct(s)
	if len(errors) != 0 {
		t.Errorf("Expected no validation errors, got %d", len(errors))
	}
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	s := TestStruct{}

	errors := ValidateStruct(s)
	if len(errors) == 0 {
		t.Fatal("Expected validation errors for required fields")
	}

	hasTitleError := false
	for _, err := range errors {
		if err.Field == "title" && strings.Contains(err.Message, "required") {
			hasTitleError = true
		}
	}
	if !hasTitleError {
		t.Error("Expected title required error")
	}
}

func TestValidateStruct_OneOf(t *testing.T) {
	s := TestStruct{Title: "Dune", Priority: strPtr("urgent")}

	errors := ValidateStruct(s)
	if len(errors) != 1 {
		t.Fatalf("Expected one validation error, got %d", len(errors))
	}
	if errors[0].Field != "priority" {
		t.Errorf("Expected priority error, got %q", errors[0].Field)
	}
	if !strings.Contains(errors[0].Message, "one of") {
		t.Errorf("Expected oneof message, got %q", errors[0].Message)
	}
}

func TestValidateStruct_RatingBounds(t *testing.T) {
	for _, tc := range []struct {
		rating int
		valid  bool
	}{
		{0, false},
		{1, true},
		{5, true},
		{6, false},
	} {
		s := TestStruct{Title: "Dune", Rating: intPtr(tc.rating)}
		errors := ValidateStruct(s)
		if tc.valid && len(errors) != 0 {
			t.Errorf("rating=%d: expected valid, got %+v", tc.rating, errors)
		}
		if !tc.valid && len(errors) == 0 {
			t.Errorf("rating=%d: expected validation error", tc.rating)
		}
	}
}

package util

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsValidation(t *testing.T) {
	wrapped := fmt.Errorf("upload: %w", ErrInvalidFileType)
	cases := map[error]bool{
		ErrNoApplicationText: true,
		wrapped:              true,
		ErrNoFileSelected:    true,
		ErrInvalidJSON:       true,
		ErrDuplicateID:       false,
		errors.New("boom"):   false,
	}
	for err, want := range cases {
		if got := IsValidation(err); got != want {
			t.Fatalf("IsValidation(%v): got %v want %v", err, got, want)
		}
	}
}

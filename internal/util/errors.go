package util

import "errors"

var (
	ErrNoApplicationText = errors.New("no application text provided")
	ErrNoFileSelected    = errors.New("no file selected")
	ErrInvalidFileType   = errors.New("invalid file type, expected pdf")
	ErrInvalidJSON       = errors.New("invalid json data")

	ErrDuplicateID = errors.New("application id already exists")
	ErrMissingID   = errors.New("application id is required")

	ErrUnparseableAnalysis = errors.New("model response is not a json object")
)

// IsValidation reports whether err should be answered with 400.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoApplicationText) ||
		errors.Is(err, ErrNoFileSelected) ||
		errors.Is(err, ErrInvalidFileType) ||
		errors.Is(err, ErrInvalidJSON)
}

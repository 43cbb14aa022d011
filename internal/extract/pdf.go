package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"grantflow/internal/util"
)

// ErrorPrefix starts the message returned in place of text when a document cannot be read.
const ErrorPrefix = "Error reading PDF: "

var errEmptyDocument = errors.New("empty document")

// PDF returns the plain text of every page in document order.
//
// On failure the returned string is ErrorPrefix followed by the cause, and err is non-nil.
// Callers that only care about text can ignore err and carry on with the message.
func PDF(data []byte) (string, error) {
	text, err := readPages(data)
	if err != nil {
		return ErrorPrefix + err.Error(), fmt.Errorf("extract pdf: %w", err)
	}
	return text, nil
}

func readPages(data []byte) (text string, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%v", r)
		}
	}()

	if len(data) == 0 {
		return "", errEmptyDocument
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	n := r.NumPage()
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		if b.Len() > 0 && pageText != "" {
			b.WriteString("\n")
		}
		b.WriteString(pageText)
	}
	return util.SanitizeText(b.String()), nil
}

// IsPDFName reports whether an upload filename carries the .pdf extension.
func IsPDFName(name string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(name)), ".pdf")
}

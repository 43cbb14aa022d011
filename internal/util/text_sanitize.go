package util

import "strings"

// SanitizeText drops NUL bytes and non-printing control characters that some PDF extractors emit,
// normalises line endings, and trims surrounding whitespace.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	r := make([]rune, 0, len(s))
	for _, ch := range s {
		switch {
		case ch == '\n' || ch == '\t':
			r = append(r, ch)
		case ch == '\r':
			r = append(r, '\n')
		case ch < 0x20, ch == 0x7f, ch == '�':
			continue
		default:
			r = append(r, ch)
		}
	}
	return strings.TrimSpace(string(r))
}

package util

import "testing"

func TestSanitizeTextRemovesNulAndControls(t *testing.T) {
	in := "ab\x00cd\x01\x02\n\txy"
	out := SanitizeText(in)
	if out != "abcd\n\txy" {
		t.Fatalf("unexpected sanitized output: %q", out)
	}
}

func TestSanitizeTextNormalisesLineEndings(t *testing.T) {
	out := SanitizeText("  line one\r\nline two\rline three\x7f  ")
	if out != "line one\nline two\nline three" {
		t.Fatalf("unexpected sanitized output: %q", out)
	}
}

package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyError(t *testing.T) {
	cases := map[string]ErrorType{
		"insufficient_quota":             ErrorQuota,
		"429 rate":                       ErrorRate,
		"maximum context length reached": ErrorContext,
		"timeout":                        ErrorTransient,
		"openai generate error 401":      ErrorAuth,
		"rate limit exceeded":            ErrorRate,
		"groq generate error 400":        ErrorPermanent,
		"bad request":                    ErrorPermanent,
	}
	for msg, want := range cases {
		if got := ClassifyError(errors.New(msg)); got != want {
			t.Fatalf("classify %q: got %s want %s", msg, got, want)
		}
	}
}

func TestClassifyWrappedErrors(t *testing.T) {
	if got := ClassifyError(fmt.Errorf("openai: %w", ErrMissingKey)); got != ErrorAuth {
		t.Fatalf("missing key: got %s", got)
	}
	if got := ClassifyError(fmt.Errorf("call: %w", context.DeadlineExceeded)); got != ErrorTransient {
		t.Fatalf("deadline: got %s", got)
	}
	if got := ClassifyError(nil); got != "" {
		t.Fatalf("nil: got %s", got)
	}
}

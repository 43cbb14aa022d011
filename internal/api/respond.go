package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"grantflow/internal/metrics"
	"grantflow/internal/util"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	apiErr := toAPIError(code, err)
	writeJSON(w, code, map[string]any{
		"error": apiErr.Message,
		"code":  apiErr.Code,
	})
}

type apiError struct {
	Code    string
	Message string
}

func submitStatus(err error) int {
	if util.IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func toAPIError(status int, err error) apiError {
	switch {
	case status >= 500:
		return apiError{Code: "GF-API-5000", Message: "Internal server error. Please retry or check service logs."}
	case status == http.StatusMethodNotAllowed:
		return apiError{Code: "GF-API-4005", Message: "This endpoint does not support the requested method."}
	case status == http.StatusRequestEntityTooLarge:
		return apiError{Code: "GF-API-4013", Message: "Upload is too large."}
	case status == http.StatusNotFound:
		return apiError{Code: "GF-API-4004", Message: "Requested resource was not found."}
	}

	// 4xx: keep user-safe validation context only.
	switch {
	case errors.Is(err, util.ErrNoApplicationText):
		return apiError{Code: "GF-API-4001", Message: "No application text provided"}
	case errors.Is(err, util.ErrNoFileSelected):
		return apiError{Code: "GF-API-4002", Message: "No file selected"}
	case errors.Is(err, util.ErrInvalidFileType):
		return apiError{Code: "GF-API-4003", Message: "Invalid file type. Please upload PDF"}
	case errors.Is(err, util.ErrInvalidJSON):
		return apiError{Code: "GF-API-4006", Message: "Invalid JSON data"}
	case errors.Is(err, errUnsupportedFormat):
		return apiError{Code: "GF-API-4007", Message: "Unsupported export format. Use json, csv or xlsx."}
	}
	return apiError{Code: "GF-API-4000", Message: "Invalid request. Check inputs and retry."}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		metrics.HTTPRequests.WithLabelValues(routeLabel(r.URL.Path), r.Method, strconv.Itoa(rec.status)).Inc()
	})
}

func routeLabel(path string) string {
	p := strings.TrimPrefix(path, "/api")
	switch p {
	case "/applications", "/analytics", "/export-queue", "/health", "/metrics":
		return p
	default:
		return "other"
	}
}

package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"grantflow/internal/config"
	"grantflow/internal/intake"
	"grantflow/internal/metrics"
	"grantflow/internal/report"
	"grantflow/internal/storage"
	"grantflow/internal/util"
)

type Server struct {
	cfg    config.Config
	store  storage.ApplicationStore
	intake *intake.Service
	log    *zap.Logger
	now    func() time.Time
}

func NewServer(cfg config.Config, store storage.ApplicationStore, in *intake.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 16 << 20
	}
	return &Server{cfg: cfg, store: store, intake: in, log: log, now: time.Now}
}

// Routes serves every endpoint both at the root and under /api.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	for _, prefix := range []string{"", "/api"} {
		mux.HandleFunc(prefix+"/applications", s.handleApplications)
		mux.HandleFunc(prefix+"/analytics", s.handleAnalytics)
		mux.HandleFunc(prefix+"/export-queue", s.handleExportQueue)
		mux.HandleFunc(prefix+"/health", s.handleHealth)
	}
	mux.Handle("/metrics", metrics.Handler())
	return withCORS(s.withRecover(withMetrics(mux)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s", r.Method))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": s.now().Format(time.RFC3339),
	})
}

func (s *Server) handleApplications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		apps, err := s.store.List(r.Context())
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, apps)
	case http.MethodPost:
		s.handleUpload(w, r)
	default:
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s", r.Method))
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	s.log.Debug("upload request",
		zap.String("method", r.Method),
		zap.String("content_type", mediaType),
		zap.Int64("content_length", r.ContentLength),
	)

	if mediaType == "multipart/form-data" {
		s.handleMultipartUpload(w, r)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeErr(w, uploadReadStatus(err), fmt.Errorf("read body: %w", err))
		return
	}
	text, err := decodeTextUpload(body)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	app, err := s.intake.SubmitText(r.Context(), text)
	if err != nil {
		writeErr(w, submitStatus(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (s *Server) handleMultipartUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeErr(w, uploadReadStatus(err), fmt.Errorf("parse multipart: %w", err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		// a file input submitted with no file arrives as an empty form value
		if _, ok := r.MultipartForm.Value["file"]; ok {
			writeErr(w, http.StatusBadRequest, util.ErrNoFileSelected)
			return
		}
		app, err := s.intake.SubmitText(r.Context(), r.FormValue("text"))
		if err != nil {
			writeErr(w, submitStatus(err), err)
			return
		}
		writeJSON(w, http.StatusCreated, app)
		return
	}

	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, fmt.Errorf("open upload: %w", err))
		return
	}
	data, err := io.ReadAll(f)
	_ = f.Close()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, fmt.Errorf("read upload: %w", err))
		return
	}
	app, err := s.intake.SubmitPDF(r.Context(), fh.Filename, data)
	if err != nil {
		writeErr(w, submitStatus(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s", r.Method))
		return
	}
	apps, err := s.store.List(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, report.Summarize(apps))
}

func (s *Server) handleExportQueue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s", r.Method))
		return
	}
	apps, err := s.store.List(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	q := report.BuildExport(apps, s.now())

	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format"))) {
	case "", "json":
		writeJSON(w, http.StatusOK, q)
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(q, "csv")))
		w.WriteHeader(http.StatusOK)
		if err := report.WriteCSV(w, q); err != nil {
			s.log.Warn("csv export failed", zap.Error(err))
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(q, "xlsx")))
		w.WriteHeader(http.StatusOK)
		if err := report.WriteXLSX(w, q); err != nil {
			s.log.Warn("xlsx export failed", zap.Error(err))
		}
	default:
		writeErr(w, http.StatusBadRequest, errUnsupportedFormat)
	}
}

var errUnsupportedFormat = errors.New("unsupported export format")

func uploadReadStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func (s *Server) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("handler panic", zap.String("path", r.URL.Path), zap.Any("panic", rec))
				writeErr(w, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

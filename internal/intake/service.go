package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"grantflow/internal/analysis"
	"grantflow/internal/extract"
	"grantflow/internal/metrics"
	"grantflow/internal/models"
	"grantflow/internal/storage"
	"grantflow/internal/util"
)

// Placeholder metadata for uploads; nothing is extracted from the text itself.
const (
	PlaceholderOrganization = "Uploaded Organization"
	PlaceholderProject      = "Uploaded Project"
	PlaceholderCategory     = "General"
	PlaceholderNeighborhood = "Toronto"
)

const (
	SourceText = "text"
	SourcePDF  = "pdf"
)

// Assessor produces an analysis and scores for application text. It never fails;
// upstream problems come back as the fallback assessment.
type Assessor interface {
	Assess(ctx context.Context, text string) analysis.Assessment
}

type Service struct {
	assessor Assessor
	store    storage.ApplicationStore
	log      *zap.Logger
	now      func() time.Time
	newID    func() string
}

func NewService(assessor Assessor, store storage.ApplicationStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		assessor: assessor,
		store:    store,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *Service) SubmitText(ctx context.Context, text string) (models.Application, error) {
	return s.submit(ctx, SourceText, text)
}

// SubmitPDF checks the upload name, extracts the text and submits it. An unreadable
// document is not an error here: its "Error reading PDF" message is analyzed like any text.
func (s *Service) SubmitPDF(ctx context.Context, filename string, data []byte) (models.Application, error) {
	if strings.TrimSpace(filename) == "" {
		metrics.Submissions.WithLabelValues(SourcePDF, "rejected").Inc()
		return models.Application{}, util.ErrNoFileSelected
	}
	if !extract.IsPDFName(filename) {
		metrics.Submissions.WithLabelValues(SourcePDF, "rejected").Inc()
		return models.Application{}, fmt.Errorf("%s: %w", filename, util.ErrInvalidFileType)
	}
	text, err := extract.PDF(data)
	if err != nil {
		s.log.Warn("pdf extraction failed", zap.String("filename", filename), zap.Error(err))
	}
	return s.submit(ctx, SourcePDF, text)
}

func (s *Service) submit(ctx context.Context, source, text string) (models.Application, error) {
	if strings.TrimSpace(text) == "" {
		metrics.Submissions.WithLabelValues(source, "rejected").Inc()
		return models.Application{}, util.ErrNoApplicationText
	}
	s.log.Info("processing application text",
		zap.String("source", source),
		zap.Int("chars", len([]rune(text))),
		zap.String("preview", util.Preview(text, 100)),
	)

	assessed := s.assessor.Assess(ctx, text)
	app := models.Application{
		ID:                s.newID(),
		Organization:      PlaceholderOrganization,
		ProjectTitle:      PlaceholderProject,
		RequestedAmount:   0,
		Category:          PlaceholderCategory,
		Neighborhood:      PlaceholderNeighborhood,
		RiskScore:         assessed.Scores.Risk,
		EligibilityScore:  assessed.Scores.Eligibility,
		CompletenessScore: assessed.Scores.Completeness,
		Status:            models.StatusUnderReview,
		SubmittedDate:     s.now().Format("2006-01-02"),
		AIAnalysis:        assessed.Analysis,
	}
	if err := s.store.Append(ctx, app); err != nil {
		metrics.Submissions.WithLabelValues(source, "failed").Inc()
		return models.Application{}, fmt.Errorf("store application: %w", err)
	}
	metrics.Submissions.WithLabelValues(source, "created").Inc()
	s.log.Info("application created", zap.String("id", app.ID), zap.String("source", source))
	return app, nil
}

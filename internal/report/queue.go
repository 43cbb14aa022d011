package report

import (
	"sort"
	"time"

	"grantflow/internal/models"
)

const (
	QueueLimit       = 10
	ProcessingNotes  = "Applications sorted by risk score (lowest first), then by eligibility and completeness scores"
	exportDateLayout = "2006-01-02 15:04:05"
)

// Prioritize returns a sorted copy, safest and best first: risk ascending, then eligibility
// and completeness descending. Ties keep store order. limit <= 0 means no limit.
func Prioritize(apps []models.Application, limit int) []models.Application {
	out := make([]models.Application, len(apps))
	copy(out, apps)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.RiskScore != b.RiskScore {
			return a.RiskScore < b.RiskScore
		}
		if a.EligibilityScore != b.EligibilityScore {
			return a.EligibilityScore > b.EligibilityScore
		}
		return a.CompletenessScore > b.CompletenessScore
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func BuildExport(apps []models.Application, now time.Time) models.ExportQueue {
	return models.ExportQueue{
		ExportDate:        now.Format(exportDateLayout),
		TotalApplications: len(apps),
		PrioritizedQueue:  Prioritize(apps, QueueLimit),
		ProcessingNotes:   ProcessingNotes,
	}
}

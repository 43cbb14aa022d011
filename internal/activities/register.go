package activities

import (
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
)

const AnalyzeTextActivityName = "AnalyzeTextActivity"

func Register(w worker.Worker, a *Activities) {
	w.RegisterActivityWithOptions(a.AnalyzeTextActivity, activity.RegisterOptions{Name: AnalyzeTextActivityName})
}

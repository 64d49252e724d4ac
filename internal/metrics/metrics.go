package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_page_renders_total",
		Help: "Total number of rendered pages",
	}, []string{"page"})

	ContactTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_contact_transitions_total",
		Help: "Contact wizard actions by outcome",
	}, []string{"action", "result"})

	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_contact_submissions_total",
		Help: "Contact form submissions by transport and result",
	}, []string{"transport", "result"})

	ContactSubmissionSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "website_contact_submission_seconds",
		Help:    "Time spent waiting on the submission collaborator",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
	})

	ContactSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "website_contact_sessions",
		Help: "Live contact wizard sessions",
	})

	ImageResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_image_fallbacks_total",
		Help: "Image source resolutions by outcome (primary, fallback, exhausted)",
	}, []string{"outcome"})

	ScheduledTaskRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_scheduled_task_runs_total",
		Help: "Scheduled task runs by task and result",
	}, []string{"task", "result"})
)

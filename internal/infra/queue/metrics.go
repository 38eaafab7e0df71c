package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_commands_enqueued_total",
			Help: "Total number of commands published to the queue",
		},
		[]string{"name"},
	)

	jobsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_jobs_processed_total",
			Help: "Total number of queue jobs processed by the worker",
		},
		[]string{"name", "result"},
	)
)

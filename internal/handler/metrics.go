package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vn_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vn_logins_total",
			Help: "Total number of login attempts by status.",
		},
		[]string{"status"},
	)

	savesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vn_saves_created_total",
		Help: "Total number of created save slots.",
	})
)

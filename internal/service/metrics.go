package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "boba_service",
		Subsystem: "orders",
		Name:      "submitted_total",
		Help:      "Total number of accepted order submissions.",
	})

	orderStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "boba_service",
		Subsystem: "orders",
		Name:      "status_updates_total",
		Help:      "Total number of applied order status changes by new status.",
	}, []string{"status"})

	shopMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "boba_service",
		Subsystem: "shops",
		Name:      "mutations_total",
		Help:      "Total number of applied shop catalog changes by operation.",
	}, []string{"operation"})

	adminLogins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "boba_service",
		Subsystem: "admin",
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts by result.",
	}, []string{"result"})
)

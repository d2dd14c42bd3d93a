package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studio_rental"

var (
	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings created",
		},
	)

	// source: check (verificação de disponibilidade) ou constraint (índice único)
	slotConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_conflicts_total",
			Help:      "Booking attempts rejected because the slot was taken",
		},
		[]string{"source"},
	)

	statusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_status_transitions_total",
			Help:      "Booking status transitions applied by admins",
		},
		[]string{"from", "to"},
	)

	proofUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_proof_uploads_total",
			Help:      "Payment proof uploads",
		},
		[]string{"method"},
	)

	fileReleaseFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "file_release_failures_total",
			Help:      "Stored files that could not be deleted",
		},
		[]string{"folder"},
	)
)

func BookingCreated() {
	bookingsCreated.Inc()
}

func SlotConflict(source string) {
	slotConflicts.WithLabelValues(source).Inc()
}

func StatusTransition(from, to string) {
	statusTransitions.WithLabelValues(from, to).Inc()
}

func ProofUploaded(method string) {
	proofUploads.WithLabelValues(method).Inc()
}

func FileReleaseFailed(folder string) {
	fileReleaseFailures.WithLabelValues(folder).Inc()
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

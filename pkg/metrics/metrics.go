package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "requests_total",
			Help:      "Count of function invocations by function, method and status code.",
		},
		[]string{"function", "method", "status"},
	)

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "bookings_created_total",
			Help:      "Count of bookings created.",
		},
	)

	roomCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "rooms_created_total",
			Help:      "Count of rooms created from the admin function.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(requests, bookingCreated, roomCreated)
	})
}

func ObserveRequest(function, method string, status int) {
	requests.WithLabelValues(function, method, strconv.Itoa(status)).Inc()
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncRoomCreated() {
	roomCreated.Inc()
}

package wire

import (
	"net/http"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Functions are the three deployable handlers, middleware included
type Functions struct {
	Rooms    gateway.HandlerFunc
	Bookings gateway.HandlerFunc
	Admin    gateway.HandlerFunc
}

// App menyimpan semua dependencies
type App struct {
	Functions *Functions
	Router    *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(store repository.Store, config *utils.Config, logger *zap.Logger) *App {
	functions := NewFunctions(store, config, logger)

	return &App{
		Functions: functions,
		Router:    setupRouter(functions, logger),
	}
}

// NewFunctions builds the handlers and wraps each one in its middleware chain
func NewFunctions(store repository.Store, config *utils.Config, logger *zap.Logger) *Functions {
	service := usecase.NewService(store, logger)
	handler := adaptor.NewHandler(service, logger)

	return &Functions{
		Rooms:    wireRooms(handler.Room, logger),
		Bookings: wireBookings(handler.Booking, logger),
		Admin:    wireAdmin(handler.Admin, config, logger),
	}
}

// setupRouter mounts the functions on a chi router for local runs
func setupRouter(functions *Functions, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Handle("/api/rooms", gateway.ToHTTP(functions.Rooms, logger))
	r.Handle("/api/bookings", gateway.ToHTTP(functions.Bookings, logger))

	admin := gateway.ToHTTP(functions.Admin, logger)
	r.Handle("/api/admin", admin)
	r.Handle("/api/admin/*", admin)

	r.Handle("/metrics", promhttp.Handler())

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

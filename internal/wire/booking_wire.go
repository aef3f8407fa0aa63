package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/middleware"

	"go.uber.org/zap"
)

var bookingsCORS = middleware.CORSPolicy{
	Methods: "GET, POST, PUT, DELETE, OPTIONS",
	Headers: "Content-Type, X-User-Id",
}

func wireBookings(bookingHandler *adaptor.BookingHandler, log *zap.Logger) gateway.HandlerFunc {
	return gateway.Chain(bookingHandler.Handle,
		middleware.Recover(log),
		middleware.Logger("bookings", log),
		middleware.CORS(bookingsCORS),
	)
}

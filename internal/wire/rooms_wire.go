package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/middleware"

	"go.uber.org/zap"
)

var roomsCORS = middleware.CORSPolicy{
	Methods: "GET, OPTIONS",
	Headers: "Content-Type",
}

func wireRooms(roomHandler *adaptor.RoomHandler, log *zap.Logger) gateway.HandlerFunc {
	return gateway.Chain(roomHandler.Handle,
		middleware.Recover(log),
		middleware.Logger("rooms", log),
		middleware.CORS(roomsCORS),
	)
}

package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

var adminCORS = middleware.CORSPolicy{
	Methods: "GET, POST, PUT, DELETE, OPTIONS",
	Headers: "Content-Type, X-Admin-Token",
}

// Preflight stays ahead of the token check so browsers can negotiate first.
func wireAdmin(adminHandler *adaptor.AdminHandler, config *utils.Config, log *zap.Logger) gateway.HandlerFunc {
	return gateway.Chain(adminHandler.Handle,
		middleware.Recover(log),
		middleware.Logger("admin", log),
		middleware.CORS(adminCORS),
		middleware.AdminToken(config.Admin.TokenHash, log),
	)
}

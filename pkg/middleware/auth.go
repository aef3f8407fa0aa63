package middleware

import (
	"context"

	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const AdminTokenHeader = "X-Admin-Token"

// AdminToken checks X-Admin-Token against a bcrypt hash.
// An empty hash disables the check.
func AdminToken(tokenHash string, logger *zap.Logger) gateway.Middleware {
	return func(next gateway.HandlerFunc) gateway.HandlerFunc {
		if tokenHash == "" {
			return next
		}

		return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			token := gateway.Header(req, AdminTokenHeader)
			if token == "" {
				return utils.ResponseUnauthorized("Missing admin token"), nil
			}

			if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
				logger.Warn("Invalid admin token",
					zap.String("path", req.Path),
					zap.String("request_id", req.RequestContext.RequestID),
				)
				return utils.ResponseUnauthorized("Invalid admin token"), nil
			}

			return next(ctx, req)
		}
	}
}

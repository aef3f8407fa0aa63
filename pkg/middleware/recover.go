package middleware

import (
	"context"

	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Recover turns a panic inside the function into a 500 response
func Recover(logger *zap.Logger) gateway.Middleware {
	return func(next gateway.HandlerFunc) gateway.HandlerFunc {
		return func(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("PANIC recovered",
						zap.Any("error", rec),
						zap.String("path", req.Path),
						zap.String("method", req.HTTPMethod),
						zap.Stack("stack"),
					)

					resp = utils.ResponseInternalError("Internal server error")
					err = nil
				}
			}()
			return next(ctx, req)
		}
	}
}

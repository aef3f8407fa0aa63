package middleware

import (
	"context"
	"time"

	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Logger logs every invocation of function and counts it in metrics
func Logger(function string, logger *zap.Logger) gateway.Middleware {
	return func(next gateway.HandlerFunc) gateway.HandlerFunc {
		return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			start := time.Now()
			ctx = utils.SetRequestContext(ctx, req.RequestContext.RequestID, function)

			resp, err := next(ctx, req)

			duration := time.Since(start)
			status := resp.StatusCode
			if err != nil {
				status = 500
			}
			metrics.ObserveRequest(function, req.HTTPMethod, status)

			fields := []zap.Field{
				zap.String("function", function),
				zap.String("method", req.HTTPMethod),
				zap.String("path", req.Path),
				zap.Any("query", req.QueryStringParameters),
				zap.Int("status", status),
				zap.Int("bytes", len(resp.Body)),
				zap.Duration("duration", duration),
				zap.String("request_id", req.RequestContext.RequestID),
				zap.String("ip", req.RequestContext.Identity.SourceIP),
				zap.String("user_agent", req.RequestContext.Identity.UserAgent),
			}
			if err != nil {
				logger.Error("Invocation failed", append(fields, zap.Error(err))...)
			} else {
				logger.Info("Invocation", fields...)
			}

			return resp, err
		}
	}
}

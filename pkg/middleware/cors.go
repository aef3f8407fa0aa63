package middleware

import (
	"context"
	"net/http"

	"hotel-booking/pkg/gateway"
	"hotel-booking/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
)

// CORSPolicy is what a function advertises in its preflight answer
type CORSPolicy struct {
	Methods string
	Headers string
}

// CORS answers OPTIONS itself, before anything touches the store
func CORS(policy CORSPolicy) gateway.Middleware {
	return func(next gateway.HandlerFunc) gateway.HandlerFunc {
		return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			if req.HTTPMethod == http.MethodOptions {
				return utils.ResponsePreflight(policy.Methods, policy.Headers), nil
			}
			return next(ctx, req)
		}
	}
}

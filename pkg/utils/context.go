package utils

import (
	"context"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	FunctionKey  contextKey = "function"
)

func SetRequestContext(ctx context.Context, requestID, function string) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	ctx = context.WithValue(ctx, FunctionKey, function)
	return ctx
}

func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDKey).(string)
	return requestID
}

func GetFunctionFromContext(ctx context.Context) string {
	function, _ := ctx.Value(FunctionKey).(string)
	return function
}

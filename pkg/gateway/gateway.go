// Package gateway defines the function signature shared by every handler and
// the adapter that serves such functions from a plain net/http server.
package gateway

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HandlerFunc maps one gateway event to one gateway response.
// A returned error is a fault the caller's runtime has to deal with.
type HandlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type Middleware func(HandlerFunc) HandlerFunc

// Chain wraps h so that the first middleware is the outermost.
func Chain(h HandlerFunc, middlewares ...Middleware) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Header looks a header up case-insensitively.
func Header(req events.APIGatewayProxyRequest, name string) string {
	if v, ok := req.Headers[name]; ok {
		return v
	}
	for k, v := range req.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// NewRequest converts an incoming HTTP request into a gateway event.
func NewRequest(r *http.Request) (events.APIGatewayProxyRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayProxyRequest{}, err
	}

	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		headers[k] = strings.Join(v, ",")
	}

	var query map[string]string
	var multiQuery map[string][]string
	if values := r.URL.Query(); len(values) > 0 {
		query = make(map[string]string, len(values))
		multiQuery = make(map[string][]string, len(values))
		for k, v := range values {
			query[k] = v[len(v)-1]
			multiQuery[k] = v
		}
	}

	requestID := r.Header.Get("X-Request-Id")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	req := events.APIGatewayProxyRequest{
		Path:                            r.URL.Path,
		HTTPMethod:                      r.Method,
		Headers:                         headers,
		MultiValueHeaders:               r.Header,
		QueryStringParameters:           query,
		MultiValueQueryStringParameters: multiQuery,
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  requestID,
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  r.RemoteAddr,
				UserAgent: r.UserAgent(),
			},
		},
	}

	if utf8.Valid(body) {
		req.Body = string(body)
	} else {
		req.Body = base64.StdEncoding.EncodeToString(body)
		req.IsBase64Encoded = true
	}

	return req, nil
}

// WriteResponse copies a gateway response onto w.
func WriteResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) error {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	for k, values := range resp.MultiValueHeaders {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}

	body := []byte(resp.Body)
	if resp.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			return err
		}
		body = decoded
	}

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}

// ToHTTP serves h on net/http. Faults returned by h become a bare 500.
func ToHTTP(h HandlerFunc, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := NewRequest(r)
		if err != nil {
			log.Warn("Failed to read request body", zap.Error(err))
			writeFault(w, http.StatusBadRequest, `{"error":"Invalid request body"}`)
			return
		}

		resp, err := h(r.Context(), req)
		if err != nil {
			log.Error("Function invocation failed",
				zap.Error(err),
				zap.String("method", req.HTTPMethod),
				zap.String("path", req.Path),
				zap.String("request_id", req.RequestContext.RequestID),
			)
			writeFault(w, http.StatusInternalServerError, `{"error":"Internal server error"}`)
			return
		}

		if err := WriteResponse(w, resp); err != nil {
			log.Error("Failed to write response", zap.Error(err))
		}
	}
}

func writeFault(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

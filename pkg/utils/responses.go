package utils

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ResponseJSON builds a JSON envelope with custom status code
func ResponseJSON(code int, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		code = http.StatusInternalServerError
		payload = []byte(`{"error":"Internal server error"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: code,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body:            string(payload),
		IsBase64Encoded: false,
	}
}

// ResponsePreflight answers a CORS preflight with an empty body
func ResponsePreflight(methods, headers string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": methods,
			"Access-Control-Allow-Headers": headers,
			"Access-Control-Max-Age":       "86400",
		},
		Body:            "",
		IsBase64Encoded: false,
	}
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(body any) events.APIGatewayProxyResponse {
	return ResponseJSON(http.StatusOK, body)
}

// returns 201 Created
func ResponseCreated(body any) events.APIGatewayProxyResponse {
	return ResponseJSON(http.StatusCreated, body)
}

// returns 200 OK with {"message": ...}
func ResponseMessage(message string) events.APIGatewayProxyResponse {
	return ResponseJSON(http.StatusOK, MessageResponse{Message: message})
}

// ------------- Error responses -------------

func ResponseError(code int, message string) events.APIGatewayProxyResponse {
	return ResponseJSON(code, ErrorResponse{Error: message})
}

// returns 400 Bad Request
func ResponseBadRequest(message string) events.APIGatewayProxyResponse {
	return ResponseError(http.StatusBadRequest, message)
}

// returns 401 Unauthorized
func ResponseUnauthorized(message string) events.APIGatewayProxyResponse {
	return ResponseError(http.StatusUnauthorized, message)
}

// returns 405 Method Not Allowed
func ResponseMethodNotAllowed() events.APIGatewayProxyResponse {
	return ResponseError(http.StatusMethodNotAllowed, "Method not allowed")
}

// returns 500 Internal Server Error
func ResponseInternalError(message string) events.APIGatewayProxyResponse {
	return ResponseError(http.StatusInternalServerError, message)
}

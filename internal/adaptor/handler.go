package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

type Handler struct {
	Room    *RoomHandler
	Booking *BookingHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Room:    NewRoomHandler(service.Room, log),
		Booking: NewBookingHandler(service.Booking, log),
		Admin:   NewAdminHandler(service.Admin, log),
	}
}

// method defaults to GET like the gateway does for events without a verb
func method(req events.APIGatewayProxyRequest) string {
	if req.HTTPMethod == "" {
		return http.MethodGet
	}
	return req.HTTPMethod
}

func decodeBody(req events.APIGatewayProxyRequest, dst any) error {
	body, err := utils.RequestBody(req)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// handleServiceError answers client errors and hands store faults back to the runtime
func handleServiceError(ctx context.Context, log *zap.Logger, err error, operation string) (events.APIGatewayProxyResponse, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	function := utils.GetFunctionFromContext(ctx)

	if appErr, ok := apperror.As(err); ok {
		log.Warn(operation+" rejected",
			zap.String("reason", appErr.Message),
			zap.Int("status", appErr.Code),
			zap.String("operation", operation),
			zap.String("function", function),
			zap.String("request_id", requestID))
		return utils.ResponseError(appErr.Code, appErr.Message), nil
	}

	log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("function", function),
		zap.String("request_id", requestID))
	return events.APIGatewayProxyResponse{}, err
}

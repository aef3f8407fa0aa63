package adaptor

import (
	"context"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "bookings")),
	}
}

// Handle is the bookings function: list, create, change status, delete.
func (h *BookingHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch method(req) {
	case http.MethodGet:
		return h.list(ctx, req)
	case http.MethodPost:
		return h.create(ctx, req)
	case http.MethodPut:
		return h.updateStatus(ctx, req)
	case http.MethodDelete:
		return h.delete(ctx, req)
	default:
		return utils.ResponseMethodNotAllowed(), nil
	}
}

// list handles GET ?user_id=&status=
func (h *BookingHandler) list(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	query := req.QueryStringParameters

	userID, err := utils.ParseOptionalInt(query["user_id"])
	if err != nil {
		h.log.Warn("Invalid user_id filter", zap.String("user_id", query["user_id"]))
		return utils.ResponseBadRequest("Invalid user_id"), nil
	}

	listReq := &request.ListBookingsRequest{UserID: userID}
	if status := query["status"]; status != "" {
		listReq.Status = &status
	}

	bookings, err := h.service.ListBookings(ctx, listReq)
	if err != nil {
		return handleServiceError(ctx, h.log, err, "list bookings")
	}

	return utils.ResponseSuccess(bookings), nil
}

// create handles POST
func (h *BookingHandler) create(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body request.CreateBookingRequest
	if err := decodeBody(req, &body); err != nil {
		h.log.Warn("Invalid create booking body", zap.Error(err))
		return utils.ResponseBadRequest("Invalid request body"), nil
	}

	created, err := h.service.CreateBooking(ctx, &body)
	if err != nil {
		return handleServiceError(ctx, h.log, err, "create booking")
	}

	return utils.ResponseCreated(created), nil
}

// updateStatus handles PUT
func (h *BookingHandler) updateStatus(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body request.UpdateBookingRequest
	if err := decodeBody(req, &body); err != nil {
		return utils.ResponseBadRequest("Invalid request body"), nil
	}

	if err := h.service.UpdateBookingStatus(ctx, &body); err != nil {
		return handleServiceError(ctx, h.log, err, "update booking")
	}

	return utils.ResponseMessage("Booking updated successfully"), nil
}

// delete handles DELETE
func (h *BookingHandler) delete(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body request.DeleteBookingRequest
	if err := decodeBody(req, &body); err != nil {
		return utils.ResponseBadRequest("Invalid request body"), nil
	}

	if err := h.service.DeleteBooking(ctx, &body); err != nil {
		return handleServiceError(ctx, h.log, err, "delete booking")
	}

	return utils.ResponseMessage("Booking deleted successfully"), nil
}

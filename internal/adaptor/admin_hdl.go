package adaptor

import (
	"context"
	"net/http"
	"strings"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// Handle is the admin function: stats, room inventory and room status.
func (h *AdminHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch method(req) {
	case http.MethodGet:
		if strings.Contains(req.Path, "/stats") {
			return h.stats(ctx)
		}
		return h.listRooms(ctx)
	case http.MethodPost:
		return h.createRoom(ctx, req)
	case http.MethodPut:
		return h.updateRoomStatus(ctx, req)
	case http.MethodDelete:
		return h.deleteRoom(ctx, req)
	default:
		return utils.ResponseMethodNotAllowed(), nil
	}
}

func (h *AdminHandler) stats(ctx context.Context) (events.APIGatewayProxyResponse, error) {
	stats, err := h.service.GetStats(ctx)
	if err != nil {
		return handleServiceError(ctx, h.log, err, "get stats")
	}

	return utils.ResponseSuccess(stats), nil
}

func (h *AdminHandler) listRooms(ctx context.Context) (events.APIGatewayProxyResponse, error) {
	rooms, err := h.service.ListRooms(ctx)
	if err != nil {
		return handleServiceError(ctx, h.log, err, "list admin rooms")
	}

	return utils.ResponseSuccess(rooms), nil
}

func (h *AdminHandler) createRoom(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body request.CreateRoomRequest
	if err := decodeBody(req, &body); err != nil {
		h.log.Warn("Invalid create room body", zap.Error(err))
		return utils.ResponseBadRequest("Invalid request body"), nil
	}

	created, err := h.service.CreateRoom(ctx, &body)
	if err != nil {
		return handleServiceError(ctx, h.log, err, "create room")
	}

	return utils.ResponseCreated(created), nil
}

func (h *AdminHandler) updateRoomStatus(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body request.UpdateRoomRequest
	if err := decodeBody(req, &body); err != nil {
		return utils.ResponseBadRequest("Invalid request body"), nil
	}

	if err := h.service.UpdateRoomStatus(ctx, &body); err != nil {
		return handleServiceError(ctx, h.log, err, "update room")
	}

	return utils.ResponseMessage("Room updated successfully"), nil
}

func (h *AdminHandler) deleteRoom(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body request.DeleteRoomRequest
	if err := decodeBody(req, &body); err != nil {
		return utils.ResponseBadRequest("Invalid request body"), nil
	}

	if err := h.service.DeleteRoom(ctx, &body); err != nil {
		return handleServiceError(ctx, h.log, err, "delete room")
	}

	return utils.ResponseMessage("Room deleted successfully"), nil
}

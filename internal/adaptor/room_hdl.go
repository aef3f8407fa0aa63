package adaptor

import (
	"context"
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "rooms")),
	}
}

// Handle is the rooms catalog function. Read only.
func (h *RoomHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if method(req) != http.MethodGet {
		return utils.ResponseMethodNotAllowed(), nil
	}

	// only an absent parameter means all; ?category= filters on the empty code
	category, ok := req.QueryStringParameters["category"]
	if !ok {
		category = usecase.CategoryAll
	}

	rooms, err := h.service.ListRooms(ctx, category)
	if err != nil {
		return handleServiceError(ctx, h.log, err, "list rooms")
	}

	return utils.ResponseSuccess(rooms), nil
}

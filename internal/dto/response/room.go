package response

import (
	"hotel-booking/internal/data/entity"
)

// CatalogRoomResponse is the public room card
type CatalogRoomResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Category     *string           `json:"category"`
	CategoryName *string           `json:"categoryName"`
	Price        float64           `json:"price"`
	Area         *float64          `json:"area"`
	Guests       *int              `json:"guests"`
	Description  *string           `json:"description"`
	Features     []string          `json:"features"`
	Image        *string           `json:"image"`
	Status       entity.RoomStatus `json:"status"`
}

type CatalogResponse struct {
	Rooms []CatalogRoomResponse `json:"rooms"`
}

// AdminRoomResponse is the back-office row
type AdminRoomResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Category     *string           `json:"category"`
	CategoryName *string           `json:"categoryName"`
	Price        float64           `json:"price"`
	Status       entity.RoomStatus `json:"status"`
	Area         *float64          `json:"area"`
	MaxGuests    *int              `json:"maxGuests"`
}

type AdminRoomsResponse struct {
	Rooms []AdminRoomResponse `json:"rooms"`
}

type RoomCreatedResponse struct {
	Message string `json:"message"`
	RoomID  int64  `json:"roomId"`
}

// Helper converters
func RoomToCatalogResponse(room *entity.Room) CatalogRoomResponse {
	features := room.Features
	if features == nil {
		features = []string{}
	}

	return CatalogRoomResponse{
		ID:           room.ID,
		Name:         room.Name,
		Category:     room.CategoryCode,
		CategoryName: room.CategoryName,
		Price:        room.PricePerNight,
		Area:         room.Area,
		Guests:       room.MaxGuests,
		Description:  room.Description,
		Features:     features,
		Image:        room.ImageURL,
		Status:       room.Status,
	}
}

func RoomToAdminResponse(room *entity.Room) AdminRoomResponse {
	return AdminRoomResponse{
		ID:           room.ID,
		Name:         room.Name,
		Category:     room.CategoryCode,
		CategoryName: room.CategoryName,
		Price:        room.PricePerNight,
		Status:       room.Status,
		Area:         room.Area,
		MaxGuests:    room.MaxGuests,
	}
}

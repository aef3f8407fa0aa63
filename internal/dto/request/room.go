package request

type CreateRoomRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"required"`
	Area        *float64 `json:"area,omitempty"`
	MaxGuests   *int     `json:"maxGuests,omitempty"`
	Description *string  `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}

type UpdateRoomRequest struct {
	RoomID int64  `json:"roomId" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type DeleteRoomRequest struct {
	RoomID int64 `json:"roomId" validate:"required"`
}

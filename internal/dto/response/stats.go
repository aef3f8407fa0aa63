package response

import "hotel-booking/internal/data/entity"

type CategoryStatResponse struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Count int64  `json:"count"`
}

type StatsResponse struct {
	TotalRooms      int64                  `json:"totalRooms"`
	AvailableRooms  int64                  `json:"availableRooms"`
	OccupiedRooms   int64                  `json:"occupiedRooms"`
	TotalBookings   int64                  `json:"totalBookings"`
	PendingBookings int64                  `json:"pendingBookings"`
	Revenue         float64                `json:"revenue"`
	CategoriesStats []CategoryStatResponse `json:"categoriesStats"`
}

func StatsToResponse(stats *entity.Stats) StatsResponse {
	categories := make([]CategoryStatResponse, len(stats.Categories))
	for i, c := range stats.Categories {
		categories[i] = CategoryStatResponse{
			Name:  c.Name,
			Code:  c.Code,
			Count: c.Count,
		}
	}

	return StatsResponse{
		TotalRooms:      stats.TotalRooms,
		AvailableRooms:  stats.AvailableRooms,
		OccupiedRooms:   stats.OccupiedRooms,
		TotalBookings:   stats.TotalBookings,
		PendingBookings: stats.PendingBookings,
		Revenue:         stats.Revenue,
		CategoriesStats: categories,
	}
}

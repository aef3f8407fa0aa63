package entity

type CategoryCount struct {
	Name  string `db:"name"`
	Code  string `db:"code"`
	Count int64  `db:"count"`
}

type Stats struct {
	TotalRooms      int64
	AvailableRooms  int64
	OccupiedRooms   int64
	TotalBookings   int64
	PendingBookings int64
	Revenue         float64
	Categories      []CategoryCount
}

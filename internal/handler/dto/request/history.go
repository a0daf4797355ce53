package request

import (
	"room-booking-bff/internal/usecase/queries"
)

type HistoryQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

func (q HistoryQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

type CancelRequestListQuery struct {
	Scope string `form:"scope"`
}

type RoomListQuery struct {
	Search string `form:"search" binding:"max=100"`
}

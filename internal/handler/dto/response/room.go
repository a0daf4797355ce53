package response

import (
	"room-booking-bff/internal/usecase/queries"
	"room-booking-bff/internal/usecase/shared"
)

type RoomListResponse struct {
	Reference ReferenceTimeResponse `json:"reference"`
	Rooms     []*queries.RoomView   `json:"rooms"`
}

func FromRoomList(l *queries.RoomList) *RoomListResponse {
	rooms := l.Items
	if rooms == nil {
		rooms = []*queries.RoomView{}
	}
	return &RoomListResponse{Reference: FromReferenceTime(l.Reference), Rooms: rooms}
}

type HistoryItemResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	RoomName   string `json:"room_name"`
	Topic      string `json:"topic"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time,omitempty"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	RecordedAt int64  `json:"recorded_at"`
}

type HistoryResponse struct {
	Items      []*HistoryItemResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

func FromHistoryPage(p *queries.HistoryPage) *HistoryResponse {
	res := &HistoryResponse{Items: make([]*HistoryItemResponse, len(p.Items))}
	for i, e := range p.Items {
		res.Items[i] = fromHistoryEntry(e)
	}
	if p.Next != nil {
		res.NextCursor = p.Next.After
	}
	return res
}

func fromHistoryEntry(e shared.HistoryEntry) *HistoryItemResponse {
	return &HistoryItemResponse{
		ID:         e.ID.String(),
		BookingID:  e.BookingID.String(),
		RoomName:   e.RoomName,
		Topic:      e.Topic,
		Date:       e.Date,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		Status:     string(e.Status),
		Reason:     e.Reason,
		RecordedAt: e.RecordedAt.Unix(),
	}
}

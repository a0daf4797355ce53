package upstream

import (
	"context"
	"net/http"

	"room-booking-bff/internal/usecase/shared"
)

type serverTimeWire struct {
	Date     flexString `json:"date"`
	Time     flexString `json:"time"`
	Timezone flexString `json:"timezone"`
}

type ServerTimeSource struct {
	client *Client
}

func NewServerTimeSource(client *Client) *ServerTimeSource {
	return &ServerTimeSource{client: client}
}

var _ shared.ServerTimeSource = (*ServerTimeSource)(nil)

func (s *ServerTimeSource) ServerTime(ctx context.Context) (shared.ServerTime, error) {
	var w serverTimeWire
	if err := s.client.doJSON(ctx, call{method: http.MethodGet, resource: "server_time"}, &w); err != nil {
		return shared.ServerTime{}, err
	}
	return shared.ServerTime{Date: string(w.Date), Time: string(w.Time), Timezone: string(w.Timezone)}, nil
}

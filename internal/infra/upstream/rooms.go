package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"room-booking-bff/internal/usecase/shared"
)

type roomWire struct {
	ID         flexInt    `json:"id"`
	Name       flexString `json:"name"`
	Capacity   flexInt    `json:"capacity"`
	Location   flexString `json:"location"`
	Facilities flexList   `json:"facilities"`
}

type RoomGateway struct {
	client *Client
}

func NewRoomGateway(client *Client) *RoomGateway {
	return &RoomGateway{client: client}
}

var _ shared.RoomGateway = (*RoomGateway)(nil)

func (g *RoomGateway) List(ctx context.Context, search string) ([]shared.Room, error) {
	q := url.Values{"action": {"list"}}
	if s := strings.TrimSpace(search); s != "" {
		q.Set("search", s)
	}

	var rows []roomWire
	if err := g.client.doJSON(ctx, call{method: http.MethodGet, resource: "rooms", query: q}, &rows); err != nil {
		return nil, err
	}

	out := make([]shared.Room, 0, len(rows))
	for _, w := range rows {
		var r shared.Room
		if err := copyWire(&r, w); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

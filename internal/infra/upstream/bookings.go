package upstream

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/infra"
	"room-booking-bff/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

type bookingWire struct {
	RawID          flexInt    `json:"id"`
	RoomName       flexString `json:"room_name"`
	Topic          flexString `json:"topic"`
	Date           flexString `json:"date"`
	StartTime      flexString `json:"start_time"`
	EndTime        flexString `json:"end_time"`
	Participants   flexInt    `json:"participants"`
	PIC            flexString `json:"pic"`
	RawMeetingType string     `json:"meeting_type"`
	Facilities     flexList   `json:"facilities"`
	RequiresRispat flexBool   `json:"requires_rispat"`
	RawStatus      string     `json:"status"`
}

func (w bookingWire) toDomain(source booking.Source) (*booking.Booking, error) {
	var attrs booking.Attributes
	if err := copyWire(&attrs, w); err != nil {
		return nil, err
	}
	id, err := booking.NewID(source, int64(w.RawID))
	if err != nil {
		return nil, err
	}
	attrs.ID = id
	attrs.MeetingType = booking.ParseMeetingType(w.RawMeetingType)
	attrs.State = booking.ParseState(w.RawStatus)
	return booking.Reconstruct(attrs)
}

// resource is the backend table behind each booking source.
func resource(source booking.Source) string {
	if source == booking.SourceAI {
		return "ai_bookings"
	}
	return "bookings"
}

type BookingGateway struct {
	client *Client
	logger *slog.Logger
}

func NewBookingGateway(client *Client, logger *slog.Logger) *BookingGateway {
	return &BookingGateway{client: client, logger: logger}
}

var _ shared.BookingGateway = (*BookingGateway)(nil)

// ListActive merges the form and assistant listings. Rows the domain rejects
// are skipped so one bad row does not hide the rest.
func (g *BookingGateway) ListActive(ctx context.Context) ([]*booking.Booking, error) {
	sources := []booking.Source{booking.SourceForm, booking.SourceAI}
	rows := make([][]bookingWire, len(sources))

	eg, egctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		eg.Go(func() error {
			return g.client.doJSON(egctx, call{
				method:   http.MethodGet,
				resource: resource(source),
				query:    url.Values{"action": {"list"}},
			}, &rows[i])
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]*booking.Booking, 0, len(rows[0])+len(rows[1]))
	for i, source := range sources {
		for _, w := range rows[i] {
			b, err := w.toDomain(source)
			if err != nil {
				g.logger.Warn("skipping malformed booking row", "source", source.Tag(), "id", int64(w.RawID), "error", err)
				continue
			}
			out = append(out, b)
		}
	}
	return out, nil
}

func (g *BookingGateway) Get(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	var w bookingWire
	err := g.client.doJSON(ctx, call{
		method:   http.MethodGet,
		resource: resource(id.Source()),
		query:    url.Values{"action": {"get"}, "id": {strconv.FormatInt(id.Number(), 10)}},
	}, &w)
	if err != nil {
		return nil, err
	}
	if w.RawID == 0 {
		return nil, infra.WrapErr(g.logger, infra.KindNotFound, http.StatusOK, "booking "+id.String()+" not returned", nil)
	}
	b, err := w.toDomain(id.Source())
	if err != nil {
		return nil, infra.WrapErr(g.logger, infra.KindMalformed, http.StatusOK, "booking "+id.String(), err)
	}
	return b, nil
}

func (g *BookingGateway) Complete(ctx context.Context, id booking.ID) error {
	return g.client.doJSON(ctx, call{
		method:   http.MethodPost,
		resource: resource(id.Source()),
		body: map[string]any{
			"action":     "complete",
			"booking_id": id.Number(),
		},
	}, nil)
}

func (g *BookingGateway) Cancel(ctx context.Context, id booking.ID, reason string) error {
	q := url.Values{"id": {strconv.FormatInt(id.Number(), 10)}}
	if reason != "" {
		q.Set("reason", reason)
	}
	return g.client.doJSON(ctx, call{
		method:   http.MethodDelete,
		resource: resource(id.Source()),
		query:    q,
	}, nil)
}

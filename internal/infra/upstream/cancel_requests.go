package upstream

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/cancelrequest"
	"room-booking-bff/internal/infra"
	"room-booking-bff/internal/usecase/shared"
)

type cancelRequestWire struct {
	ID                flexInt    `json:"id"`
	RawBookingID      flexString `json:"booking_id"`
	BookingType       string     `json:"booking_type"`
	RequesterName     flexString `json:"requester_name"`
	RequesterFullName flexString `json:"requester_full_name"`
	RequesterEmail    flexString `json:"requester_email"`
	OwnerName         flexString `json:"owner_name"`
	OwnerFullName     flexString `json:"owner_full_name"`
	OwnerEmail        flexString `json:"owner_email"`
	Reason            flexString `json:"reason"`
	RawStatus         string     `json:"status"`
	ResponseMessage   flexString `json:"response_message"`
	CreatedAt         flexTime   `json:"created_at"`
	UpdatedAt         flexTime   `json:"updated_at"`
}

func (w cancelRequestWire) bookingID() (booking.ID, error) {
	raw := strings.TrimSpace(string(w.RawBookingID))
	if id, err := booking.ParseID(raw); err == nil && id.IsAI() {
		return id, nil
	}
	source, err := booking.ParseSourceTag(w.BookingType)
	if err != nil {
		return booking.ID{}, err
	}
	n, err := booking.ParseID(raw)
	if err != nil {
		return booking.ID{}, err
	}
	return booking.NewID(source, n.Number())
}

func (w cancelRequestWire) toDomain(loc *time.Location) (*cancelrequest.CancelRequest, error) {
	id, err := w.bookingID()
	if err != nil {
		return nil, err
	}
	var status cancelrequest.Status
	if strings.TrimSpace(w.RawStatus) != "" {
		if status, err = cancelrequest.ParseStatus(w.RawStatus); err != nil {
			return nil, err
		}
	}
	return cancelrequest.Reconstruct(cancelrequest.Attributes{
		ID:        int64(w.ID),
		BookingID: id,
		Requester: cancelrequest.Party{
			Name:     string(w.RequesterName),
			FullName: string(w.RequesterFullName),
			Email:    string(w.RequesterEmail),
		},
		Owner: cancelrequest.Party{
			Name:     string(w.OwnerName),
			FullName: string(w.OwnerFullName),
			Email:    string(w.OwnerEmail),
		},
		Reason:          string(w.Reason),
		Status:          status,
		ResponseMessage: string(w.ResponseMessage),
		CreatedAt:       w.CreatedAt.In(loc),
		UpdatedAt:       w.UpdatedAt.In(loc),
	})
}

type createCancelRequestBody struct {
	BookingID         int64  `json:"booking_id"`
	BookingType       string `json:"booking_type"`
	RequesterName     string `json:"requester_name"`
	RequesterFullName string `json:"requester_full_name,omitempty"`
	RequesterEmail    string `json:"requester_email,omitempty"`
	OwnerName         string `json:"owner_name"`
	Reason            string `json:"reason"`
}

type respondCancelRequestBody struct {
	RequestID       int64  `json:"request_id"`
	Status          string `json:"status"`
	ResponseMessage string `json:"response_message,omitempty"`
}

type CancelRequestGateway struct {
	client *Client
	loc    *time.Location
	logger *slog.Logger
}

func NewCancelRequestGateway(client *Client, loc *time.Location, logger *slog.Logger) *CancelRequestGateway {
	return &CancelRequestGateway{client: client, loc: loc, logger: logger}
}

var _ shared.CancelRequestGateway = (*CancelRequestGateway)(nil)

// Create submits req and returns it with the id the backend assigned. The
// backend may answer with the full row or only the new id.
func (g *CancelRequestGateway) Create(ctx context.Context, req *cancelrequest.CancelRequest) (*cancelrequest.CancelRequest, error) {
	var created cancelRequestWire
	err := g.client.doJSON(ctx, call{
		method:   http.MethodPost,
		resource: "cancel_requests",
		query:    url.Values{"action": {"create"}},
		body: createCancelRequestBody{
			BookingID:         req.BookingID().Number(),
			BookingType:       req.BookingType(),
			RequesterName:     req.Requester().Name,
			RequesterFullName: req.Requester().FullName,
			RequesterEmail:    req.Requester().Email,
			OwnerName:         req.Owner().Name,
			Reason:            req.Reason().String(),
		},
	}, &created)
	if err != nil {
		return nil, err
	}
	if created.ID <= 0 {
		return nil, infra.WrapErr(g.logger, infra.KindMalformed, http.StatusOK, "create cancel request: no id returned", nil)
	}

	attrs := req.Attributes()
	attrs.ID = int64(created.ID)
	if at := created.CreatedAt.In(g.loc); !at.IsZero() {
		attrs.CreatedAt = at
		attrs.UpdatedAt = at
	}
	return cancelrequest.Reconstruct(attrs)
}

func (g *CancelRequestGateway) ListByOwner(ctx context.Context, ownerName string) ([]*cancelrequest.CancelRequest, error) {
	return g.list(ctx, url.Values{"action": {"get_by_owner"}, "owner_name": {ownerName}})
}

func (g *CancelRequestGateway) ListByRequester(ctx context.Context, requesterName string) ([]*cancelrequest.CancelRequest, error) {
	return g.list(ctx, url.Values{"action": {"get_by_requester"}, "requester_name": {requesterName}})
}

func (g *CancelRequestGateway) list(ctx context.Context, q url.Values) ([]*cancelrequest.CancelRequest, error) {
	var rows []cancelRequestWire
	err := g.client.doJSON(ctx, call{
		method:   http.MethodGet,
		resource: "cancel_requests",
		query:    q,
	}, &rows)
	if err != nil {
		return nil, err
	}

	out := make([]*cancelrequest.CancelRequest, 0, len(rows))
	for _, w := range rows {
		r, err := w.toDomain(g.loc)
		if err != nil {
			g.logger.Warn("skipping malformed cancel request row", "id", int64(w.ID), "error", err)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (g *CancelRequestGateway) Respond(ctx context.Context, requestID int64, decision cancelrequest.Status, message string) error {
	return g.client.doJSON(ctx, call{
		method:   http.MethodPost,
		resource: "cancel_requests",
		query:    url.Values{"action": {"respond"}},
		body: respondCancelRequestBody{
			RequestID:       requestID,
			Status:          decision.String(),
			ResponseMessage: message,
		},
	}, nil)
}

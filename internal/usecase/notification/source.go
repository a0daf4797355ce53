package notification

import (
	"context"

	"room-booking-bff/internal/domain/cancelrequest"
	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/usecase/shared"
)

// Source yields the cancel requests still waiting on owner. The poller only
// pulls; nothing is pushed.
type Source interface {
	Pending(ctx context.Context, owner user.Actor) ([]*cancelrequest.CancelRequest, error)
}

type gatewaySource struct {
	gateway shared.CancelRequestGateway
}

func NewGatewaySource(gateway shared.CancelRequestGateway) Source {
	return &gatewaySource{gateway: gateway}
}

func (s *gatewaySource) Pending(ctx context.Context, owner user.Actor) ([]*cancelrequest.CancelRequest, error) {
	list, err := s.gateway.ListByOwner(ctx, owner.Name())
	if err != nil {
		return nil, err
	}
	return cancelrequest.PendingFor(cancelrequest.MergeNewestFirst(list), owner), nil
}

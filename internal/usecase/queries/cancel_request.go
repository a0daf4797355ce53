package queries

import (
	"context"
	"strings"

	"room-booking-bff/internal/domain/cancelrequest"
	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidScope = errs.Define(errs.ErrValidation, "scope must be owner, requester or all")

type Scope string

const (
	ScopeOwner     Scope = "owner"
	ScopeRequester Scope = "requester"
	ScopeAll       Scope = "all"
)

func ParseScope(s string) (Scope, error) {
	switch sc := Scope(strings.ToLower(strings.TrimSpace(s))); sc {
	case "":
		return ScopeAll, nil
	case ScopeOwner, ScopeRequester, ScopeAll:
		return sc, nil
	default:
		return "", ErrInvalidScope
	}
}

type CancelRequestQueries interface {
	List(ctx context.Context, actor user.Actor, scope Scope) ([]*CancelRequestView, error)
}

type cancelRequestQueriesImpl struct {
	requests shared.CancelRequestGateway
}

func NewCancelRequestQueries(requests shared.CancelRequestGateway) CancelRequestQueries {
	return &cancelRequestQueriesImpl{requests: requests}
}

func (q *cancelRequestQueriesImpl) List(ctx context.Context, actor user.Actor, scope Scope) ([]*CancelRequestView, error) {
	var owned, requested []*cancelrequest.CancelRequest

	g, gctx := errgroup.WithContext(ctx)
	if scope == ScopeOwner || scope == ScopeAll {
		g.Go(func() error {
			var err error
			owned, err = q.requests.ListByOwner(gctx, actor.Name())
			return err
		})
	}
	if scope == ScopeRequester || scope == ScopeAll {
		g.Go(func() error {
			var err error
			requested, err = q.requests.ListByRequester(gctx, actor.Name())
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := cancelrequest.MergeNewestFirst(owned, requested)
	return toCancelRequestViews(actor, merged), nil
}

func toCancelRequestViews(actor user.Actor, list []*cancelrequest.CancelRequest) []*CancelRequestView {
	out := make([]*CancelRequestView, 0, len(list))
	for _, r := range list {
		out = append(out, NewCancelRequestView(actor, r))
	}
	return out
}

// NewCancelRequestView is how actor sees r; CanRespond only holds for the owner of a pending request.
func NewCancelRequestView(actor user.Actor, r *cancelrequest.CancelRequest) *CancelRequestView {
	return &CancelRequestView{
		ID:                r.ID(),
		BookingID:         r.BookingID(),
		BookingType:       r.BookingType(),
		RequesterName:     r.Requester().Name,
		RequesterFullName: r.Requester().FullName,
		RequesterEmail:    r.Requester().Email,
		OwnerName:         r.Owner().Name,
		OwnerFullName:     r.Owner().FullName,
		OwnerEmail:        r.Owner().Email,
		Reason:            r.Reason().String(),
		Status:            r.Status(),
		ResponseMessage:   r.ResponseMessage().String(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
		CanRespond:        r.IsPending() && r.CheckResponder(actor) == nil,
	}
}

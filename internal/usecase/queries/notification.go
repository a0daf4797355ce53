package queries

import (
	"context"

	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/usecase/shared"
)

type NotificationQueries interface {
	Pending(ctx context.Context, actor user.Actor) (*NotificationView, error)
}

type notificationQueriesImpl struct {
	feed shared.NotificationFeed
}

func NewNotificationQueries(feed shared.NotificationFeed) NotificationQueries {
	return &notificationQueriesImpl{feed: feed}
}

func (q *notificationQueriesImpl) Pending(ctx context.Context, actor user.Actor) (*NotificationView, error) {
	snap, err := q.feed.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return &NotificationView{
		PendingCount: snap.Count(),
		Pending:      toCancelRequestViews(actor, snap.Pending),
		RefreshedAt:  snap.RefreshedAt,
	}, nil
}

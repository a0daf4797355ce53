package queries

import (
	"context"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/usecase/shared"
)

type RispatQueries interface {
	List(ctx context.Context, bookingID booking.ID) ([]shared.RispatFile, error)
	Download(ctx context.Context, fileID int64) (*shared.RispatDownload, error)
}

type rispatQueriesImpl struct {
	rispat shared.RispatGateway
}

func NewRispatQueries(rispat shared.RispatGateway) RispatQueries {
	return &rispatQueriesImpl{rispat: rispat}
}

func (q *rispatQueriesImpl) List(ctx context.Context, bookingID booking.ID) ([]shared.RispatFile, error) {
	files, err := q.rispat.List(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []shared.RispatFile{}
	}
	return files, nil
}

func (q *rispatQueriesImpl) Download(ctx context.Context, fileID int64) (*shared.RispatDownload, error) {
	return q.rispat.Download(ctx, fileID)
}

package queries

import (
	"context"
	"time"

	"room-booking-bff/internal/domain/user"
	"room-booking-bff/internal/usecase/shared"

	"github.com/google/uuid"
)

type HistoryQueries interface {
	List(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) (*HistoryPage, error)
}

type historyQueriesImpl struct {
	history shared.HistoryLog
}

func NewHistoryQueries(history shared.HistoryLog) HistoryQueries {
	return &historyQueriesImpl{history: history}
}

// List pages through the log newest first. The log itself is bounded, so
// paging happens in memory.
func (q *historyQueriesImpl) List(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) (*HistoryPage, error) {
	limit = ValidateLimit(limit)

	entries, err := q.history.List(ctx, actor.Name())
	if err != nil {
		return nil, err
	}

	start := 0
	if cursor != nil && cursor.After != "" {
		at, id, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, derr
		}
		start = resumeIndex(entries, at, id)
	}

	end := min(start+limit, len(entries))
	page := &HistoryPage{Items: entries[start:end]}
	if end < len(entries) {
		last := entries[end-1]
		page.Next = &Cursor{After: EncodeAfterCursor(last.RecordedAt, last.ID)}
	}
	return page, nil
}

// resumeIndex finds the entry right after the cursor. When the cursor entry
// was trimmed from the log, paging resumes at the first older entry.
func resumeIndex(entries []shared.HistoryEntry, at time.Time, id uuid.UUID) int {
	for i, e := range entries {
		if e.ID == id {
			return i + 1
		}
	}
	for i, e := range entries {
		if e.RecordedAt.Truncate(time.Microsecond).Before(at) {
			return i
		}
	}
	return len(entries)
}

package cancelrequest

import (
	"cmp"
	"slices"

	"room-booking-bff/internal/domain/user"
)

// MergeNewestFirst unions listings, keeping the first occurrence of each id,
// ordered by creation time descending with the higher id first on ties.
// Requests that were never persisted (id 0) are skipped.
func MergeNewestFirst(lists ...[]*CancelRequest) []*CancelRequest {
	seen := make(map[int64]struct{})
	out := make([]*CancelRequest, 0)
	for _, list := range lists {
		for _, r := range list {
			if r == nil || r.id == 0 {
				continue
			}
			if _, dup := seen[r.id]; dup {
				continue
			}
			seen[r.id] = struct{}{}
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b *CancelRequest) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		return cmp.Compare(b.id, a.id)
	})
	return out
}

// PendingFor is the notification view: requests still waiting on owner.
func PendingFor(list []*CancelRequest, owner user.Actor) []*CancelRequest {
	out := make([]*CancelRequest, 0)
	for _, r := range list {
		if r.IsPending() && owner.Is(r.owner.Name) {
			out = append(out, r)
		}
	}
	return out
}

func Find(list []*CancelRequest, id int64) (*CancelRequest, bool) {
	for _, r := range list {
		if r.id == id {
			return r, true
		}
	}
	return nil, false
}

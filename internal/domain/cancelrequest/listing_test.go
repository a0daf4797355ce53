//go:build unit

package cancelrequest_test

import (
	"testing"
	"time"

	"room-booking-bff/internal/domain/cancelrequest"
	"room-booking-bff/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func ids(list []*cancelrequest.CancelRequest) []int64 {
	out := make([]int64, 0, len(list))
	for _, r := range list {
		out = append(out, r.ID())
	}
	return out
}

func TestMergeNewestFirst(t *testing.T) {
	t0 := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	owned := []*cancelrequest.CancelRequest{
		builder.NewCancelRequestBuilder().WithID(1).CreatedAtTime(t0).MustBuild(),
		builder.NewCancelRequestBuilder().WithID(3).CreatedAtTime(t0.Add(2 * time.Hour)).MustBuild(),
	}
	requested := []*cancelrequest.CancelRequest{
		builder.NewCancelRequestBuilder().WithID(2).CreatedAtTime(t0.Add(time.Hour)).MustBuild(),
		builder.NewCancelRequestBuilder().WithID(3).CreatedAtTime(t0.Add(2 * time.Hour)).MustBuild(),
		builder.NewCancelRequestBuilder().WithID(4).CreatedAtTime(t0).MustBuild(),
	}

	got := cancelrequest.MergeNewestFirst(owned, requested)
	assert.Equal(t, []int64{3, 2, 4, 1}, ids(got))
}

func TestMergeNewestFirst_Empty(t *testing.T) {
	got := cancelrequest.MergeNewestFirst(nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPendingFor(t *testing.T) {
	list := []*cancelrequest.CancelRequest{
		builder.NewCancelRequestBuilder().WithID(1).WithParties("Bob", "Alice").MustBuild(),
		builder.NewCancelRequestBuilder().WithID(2).WithParties("Bob", "alice").WithStatus(cancelrequest.StatusApproved).MustBuild(),
		builder.NewCancelRequestBuilder().WithID(3).WithParties("Alice", "Carol").MustBuild(),
		builder.NewCancelRequestBuilder().WithID(4).WithParties("Dan", "ALICE").MustBuild(),
	}

	got := cancelrequest.PendingFor(list, builder.NewActor("Alice"))
	assert.Equal(t, []int64{1, 4}, ids(got))
}

func TestFind(t *testing.T) {
	list := []*cancelrequest.CancelRequest{builder.NewCancelRequestBuilder().WithID(7).MustBuild()}

	r, ok := cancelrequest.Find(list, 7)
	assert.True(t, ok)
	assert.Equal(t, int64(7), r.ID())

	_, ok = cancelrequest.Find(list, 8)
	assert.False(t, ok)
}

//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/cancelrequest"
	"room-booking-bff/internal/pkg/clock"
	"room-booking-bff/internal/pkg/config"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/commands"
	"room-booking-bff/tests/common/builder"
	commandsmock "room-booking-bff/tests/mock/commands"
	sharedmock "room-booking-bff/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CancelRequestCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	requests   *sharedmock.MockCancelRequestGateway
	bookings   *sharedmock.MockBookingGateway
	cache      *sharedmock.MockBookingCache
	bookingCmd *commandsmock.MockBookingCommands
	feed       *sharedmock.MockNotificationFeed
	ref        *sharedmock.MockReferenceClock
	clock      *clock.MockClock
	ctx        context.Context
}

func (s *CancelRequestCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.requests = sharedmock.NewMockCancelRequestGateway(s.ctrl)
	s.bookings = sharedmock.NewMockBookingGateway(s.ctrl)
	s.cache = sharedmock.NewMockBookingCache(s.ctrl)
	s.bookingCmd = commandsmock.NewMockBookingCommands(s.ctrl)
	s.feed = sharedmock.NewMockNotificationFeed(s.ctrl)
	s.ref = sharedmock.NewMockReferenceClock(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	s.ref.EXPECT().Now(gomock.Any()).Return(referenceAt("2024-01-10", "08:00")).AnyTimes()
}

func (s *CancelRequestCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *CancelRequestCommandsTestSuite) newUseCase(autoCancel bool) commands.CancelRequestCommands {
	return commands.NewCancelRequestCommands(
		s.requests, s.bookings, s.cache, s.bookingCmd, s.feed, s.ref, s.clock,
		config.CancelRequestConfig{AutoCancelOnApprove: autoCancel},
		discardLogger,
	)
}

func TestCancelRequestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CancelRequestCommandsTestSuite))
}

// ================================================================================
// Create
// ================================================================================

func (s *CancelRequestCommandsTestSuite) TestCreate() {
	id := booking.FormID(42)
	aliceBooking := func() *booking.Booking {
		return builder.NewBookingBuilder().WithID(id).WithPIC("Alice").MustBuild()
	}

	s.Run("success: Bob asks Alice to cancel", func() {
		uc := s.newUseCase(false)
		s.cache.EXPECT().Load(gomock.Any()).Return(nil, false)
		s.bookings.EXPECT().Get(gomock.Any(), id).Return(aliceBooking(), nil)
		s.requests.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *cancelrequest.CancelRequest) (*cancelrequest.CancelRequest, error) {
				s.Equal(cancelrequest.StatusPending, r.Status())
				s.Equal("Bob", r.Requester().Name)
				s.Equal("Alice", r.Owner().Name)
				s.Equal("Room double-booked", r.Reason().String())
				s.Equal(id, r.BookingID())
				attrs := r.Attributes()
				attrs.ID = 9
				return cancelrequest.Reconstruct(attrs)
			})

		got, err := uc.Create(s.ctx, builder.NewActor("Bob"), id, "Room double-booked")
		s.Require().NoError(err)
		s.Equal(int64(9), got.ID())
		s.Equal(cancelrequest.StatusPending, got.Status())
	})

	s.Run("error: self request refused without a network call when cached", func() {
		uc := s.newUseCase(false)
		s.cache.EXPECT().Load(gomock.Any()).Return([]*booking.Booking{aliceBooking()}, true)
		s.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
		s.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Create(s.ctx, builder.NewActor("ALICE"), id, "changed plans")
		s.ErrorIs(err, cancelrequest.ErrSelfRequest)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("error: reason validated before anything else", func() {
		uc := s.newUseCase(false)
		cases := []struct {
			reason string
			want   error
		}{
			{"", cancelrequest.ErrEmptyReason},
			{"   ", cancelrequest.ErrEmptyReason},
			{strings.Repeat("r", 501), cancelrequest.ErrReasonTooLong},
		}
		for _, tc := range cases {
			_, err := uc.Create(s.ctx, builder.NewActor("Bob"), id, tc.reason)
			s.ErrorIs(err, tc.want)
		}
	})

	s.Run("success: exactly 500 characters", func() {
		uc := s.newUseCase(false)
		s.cache.EXPECT().Load(gomock.Any()).Return([]*booking.Booking{aliceBooking()}, true)
		s.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(builder.NewCancelRequestBuilder().MustBuild(), nil)

		_, err := uc.Create(s.ctx, builder.NewActor("Bob"), id, strings.Repeat("r", 500))
		s.NoError(err)
	})

	s.Run("error: expired booking", func() {
		uc := s.newUseCase(false)
		past := builder.NewBookingBuilder().WithID(id).WithPIC("Alice").WithSchedule("2024-01-09", "09:00", "10:00").MustBuild()
		s.cache.EXPECT().Load(gomock.Any()).Return([]*booking.Booking{past}, true)
		s.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Create(s.ctx, builder.NewActor("Bob"), id, "too late")
		s.ErrorIs(err, booking.ErrMeetingExpired)
	})

	s.Run("error: booking lookup fails", func() {
		uc := s.newUseCase(false)
		s.cache.EXPECT().Load(gomock.Any()).Return(nil, false)
		s.bookings.EXPECT().Get(gomock.Any(), id).Return(nil, errs.Mark(errors.New("HTTP 404"), errs.ErrNotFound))

		_, err := uc.Create(s.ctx, builder.NewActor("Bob"), id, "clash")
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

// ================================================================================
// Respond
// ================================================================================

func (s *CancelRequestCommandsTestSuite) TestRespond() {
	alice := builder.NewActor("Alice")
	pending := func() *cancelrequest.CancelRequest {
		return builder.NewCancelRequestBuilder().WithID(5).WithParties("Bob", "Alice").MustBuild()
	}

	s.Run("success: approve records the decision only", func() {
		uc := s.newUseCase(false)
		s.requests.EXPECT().ListByOwner(gomock.Any(), "Alice").Return([]*cancelrequest.CancelRequest{pending()}, nil)
		s.requests.EXPECT().Respond(gomock.Any(), int64(5), cancelrequest.StatusApproved, "OK, go ahead").Return(nil)
		s.feed.EXPECT().Refresh(gomock.Any())
		s.bookingCmd.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		res, err := uc.Respond(s.ctx, alice, 5, "approved", "OK, go ahead")
		s.Require().NoError(err)
		s.Equal(cancelrequest.StatusApproved, res.Request.Status())
		s.Equal("OK, go ahead", res.Request.ResponseMessage().String())
		s.Nil(res.Booking)
	})

	s.Run("success: approve cancels the booking when enabled", func() {
		uc := s.newUseCase(true)
		s.requests.EXPECT().ListByOwner(gomock.Any(), "Alice").Return([]*cancelrequest.CancelRequest{pending()}, nil)
		s.requests.EXPECT().Respond(gomock.Any(), int64(5), cancelrequest.StatusApproved, "").Return(nil)
		s.feed.EXPECT().Refresh(gomock.Any())
		s.bookingCmd.EXPECT().Cancel(gomock.Any(), alice, booking.FormID(42), gomock.Any()).
			Return(&commands.Outcome{BookingID: booking.FormID(42), Status: commands.OutcomeCancelled}, nil)

		res, err := uc.Respond(s.ctx, alice, 5, "approved", "")
		s.Require().NoError(err)
		s.Require().NotNil(res.Booking)
		s.Equal(commands.OutcomeCancelled, res.Booking.Status)
		s.NoError(res.AutoCancelErr)
	})

	s.Run("success: reject never cancels", func() {
		uc := s.newUseCase(true)
		s.requests.EXPECT().ListByOwner(gomock.Any(), "Alice").Return([]*cancelrequest.CancelRequest{pending()}, nil)
		s.requests.EXPECT().Respond(gomock.Any(), int64(5), cancelrequest.StatusRejected, "No").Return(nil)
		s.feed.EXPECT().Refresh(gomock.Any())

		res, err := uc.Respond(s.ctx, alice, 5, "rejected", "No")
		s.Require().NoError(err)
		s.Equal(cancelrequest.StatusRejected, res.Request.Status())
		s.Nil(res.Booking)
	})

	s.Run("partial: auto cancel failure is reported, decision kept", func() {
		uc := s.newUseCase(true)
		s.requests.EXPECT().ListByOwner(gomock.Any(), "Alice").Return([]*cancelrequest.CancelRequest{pending()}, nil)
		s.requests.EXPECT().Respond(gomock.Any(), int64(5), cancelrequest.StatusApproved, "").Return(nil)
		s.feed.EXPECT().Refresh(gomock.Any())
		s.bookingCmd.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, booking.ErrMeetingExpired)

		res, err := uc.Respond(s.ctx, alice, 5, "approved", "")
		s.Require().NoError(err)
		s.Equal(cancelrequest.StatusApproved, res.Request.Status())
		s.ErrorIs(res.AutoCancelErr, booking.ErrMeetingExpired)
	})

	s.Run("error: already answered is refused locally", func() {
		uc := s.newUseCase(false)
		done := builder.NewCancelRequestBuilder().WithID(5).WithParties("Bob", "Alice").WithStatus(cancelrequest.StatusApproved).MustBuild()
		s.requests.EXPECT().ListByOwner(gomock.Any(), "Alice").Return([]*cancelrequest.CancelRequest{done}, nil)
		s.requests.EXPECT().Respond(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Respond(s.ctx, alice, 5, "rejected", "")
		s.ErrorIs(err, cancelrequest.ErrAlreadyResolved)
		s.Equal(cancelrequest.StatusApproved, done.Status())
	})

	s.Run("error: backend conflict maps to already resolved", func() {
		uc := s.newUseCase(false)
		s.requests.EXPECT().ListByOwner(gomock.Any(), "Alice").Return([]*cancelrequest.CancelRequest{pending()}, nil)
		s.requests.EXPECT().Respond(gomock.Any(), int64(5), cancelrequest.StatusRejected, "").
			Return(errs.Mark(errors.New("HTTP 409"), errs.ErrConflict))

		_, err := uc.Respond(s.ctx, alice, 5, "rejected", "")
		s.True(errs.Is(err, cancelrequest.ErrAlreadyResolved))
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("error: unknown request", func() {
		uc := s.newUseCase(false)
		s.requests.EXPECT().ListByOwner(gomock.Any(), "Alice").Return([]*cancelrequest.CancelRequest{pending()}, nil)

		_, err := uc.Respond(s.ctx, alice, 99, "approved", "")
		s.ErrorIs(err, commands.ErrCancelRequestNotFound)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: invalid input is rejected before any call", func() {
		uc := s.newUseCase(false)

		_, err := uc.Respond(s.ctx, alice, 5, "pending", "")
		s.ErrorIs(err, cancelrequest.ErrInvalidDecision)

		_, err = uc.Respond(s.ctx, alice, 5, "approved", strings.Repeat("m", 501))
		s.ErrorIs(err, cancelrequest.ErrResponseTooLong)
	})
}

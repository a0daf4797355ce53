//go:build unit

package queries_test

import (
	"context"
	"testing"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/usecase/queries"
	"room-booking-bff/internal/usecase/shared"
	"room-booking-bff/tests/common/builder"
	sharedmock "room-booking-bff/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	rooms    *sharedmock.MockRoomGateway
	bookings *sharedmock.MockBookingGateway
	cache    *sharedmock.MockBookingCache
	ref      *sharedmock.MockReferenceClock
	q        queries.RoomQueries
	ctx      context.Context
}

func (s *RoomQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.rooms = sharedmock.NewMockRoomGateway(s.ctrl)
	s.bookings = sharedmock.NewMockBookingGateway(s.ctrl)
	s.cache = sharedmock.NewMockBookingCache(s.ctrl)
	s.ref = sharedmock.NewMockReferenceClock(s.ctrl)
	s.q = queries.NewRoomQueries(s.rooms, s.bookings, s.cache, s.ref)
	s.ctx = context.Background()
}

func (s *RoomQueriesTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestRoomQueriesSuite(t *testing.T) {
	suite.Run(t, new(RoomQueriesTestSuite))
}

func (s *RoomQueriesTestSuite) TestList() {
	merapi := shared.Room{ID: 1, Name: "Ruang Rapat Merapi", Capacity: 10}
	bromo := shared.Room{ID: 2, Name: "Ruang Rapat Bromo", Capacity: 6}
	rinjani := shared.Room{ID: 3, Name: "Ruang Rapat Rinjani", Capacity: 20}

	s.Run("success: status per room", func() {
		s.ref.EXPECT().Now(gomock.Any()).Return(referenceAt("2024-01-10", "09:30"))
		s.rooms.EXPECT().List(gomock.Any(), "ruang").Return([]shared.Room{merapi, bromo, rinjani}, nil)

		list := []*booking.Booking{
			// ongoing in Merapi, matched case-insensitively
			builder.NewBookingBuilder().WithRoomName("ruang rapat merapi").MustBuild(),
			// two upcoming in Bromo, the earlier one is next
			builder.NewBookingBuilder().WithID(booking.FormID(2)).WithRoomName("Ruang Rapat Bromo").
				WithSchedule("2024-01-10", "15:00", "16:00").MustBuild(),
			builder.NewBookingBuilder().WithID(booking.FormID(3)).WithRoomName("Ruang Rapat Bromo").
				WithSchedule("2024-01-10", "11:00", "12:00").MustBuild(),
			// Rinjani: cancelled now, tomorrow, and finished earlier today
			builder.NewBookingBuilder().WithID(booking.FormID(4)).WithRoomName("Ruang Rapat Rinjani").
				WithState(booking.StateCancelled).MustBuild(),
			builder.NewBookingBuilder().WithID(booking.FormID(5)).WithRoomName("Ruang Rapat Rinjani").
				WithSchedule("2024-01-11", "09:00", "10:00").MustBuild(),
			builder.NewBookingBuilder().WithID(booking.FormID(6)).WithRoomName("Ruang Rapat Rinjani").
				WithSchedule("2024-01-10", "07:00", "08:00").MustBuild(),
		}
		s.cache.EXPECT().Load(gomock.Any()).Return(list, true)

		got, err := s.q.List(s.ctx, "ruang")
		s.Require().NoError(err)
		s.Require().Len(got.Items, 3)

		s.Equal(queries.RoomOngoing, got.Items[0].Status)
		s.Require().NotNil(got.Items[0].Current)
		s.Equal(booking.FormID(42), got.Items[0].Current.BookingID)
		s.Nil(got.Items[0].Next)

		s.Equal(queries.RoomUpcoming, got.Items[1].Status)
		s.Require().NotNil(got.Items[1].Next)
		s.Equal("11:00", got.Items[1].Next.StartTime)

		s.Equal(queries.RoomAvailable, got.Items[2].Status)
		s.Nil(got.Items[2].Current)
		s.Nil(got.Items[2].Next)
		s.NotNil(got.Items[2].Facilities)
	})

	s.Run("success: ongoing wins over upcoming", func() {
		s.ref.EXPECT().Now(gomock.Any()).Return(referenceAt("2024-01-10", "09:30"))
		s.rooms.EXPECT().List(gomock.Any(), "").Return([]shared.Room{merapi}, nil)
		s.cache.EXPECT().Load(gomock.Any()).Return([]*booking.Booking{
			builder.NewBookingBuilder().MustBuild(),
			builder.NewBookingBuilder().WithID(booking.FormID(7)).WithSchedule("2024-01-10", "13:00", "14:00").MustBuild(),
		}, true)

		got, err := s.q.List(s.ctx, "")
		s.Require().NoError(err)
		s.Equal(queries.RoomOngoing, got.Items[0].Status)
		s.Require().NotNil(got.Items[0].Next)
		s.Equal(booking.FormID(7), got.Items[0].Next.BookingID)
	})

	s.Run("error: room catalogue unavailable", func() {
		s.rooms.EXPECT().List(gomock.Any(), "").Return(nil, shared.ErrKeyNotFound)

		_, err := s.q.List(s.ctx, "")
		s.Error(err)
	})
}

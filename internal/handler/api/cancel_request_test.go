//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"room-booking-bff/internal/domain/booking"
	"room-booking-bff/internal/domain/cancelrequest"
	"room-booking-bff/internal/handler/api"
	resdto "room-booking-bff/internal/handler/dto/response"
	"room-booking-bff/internal/handler/httperr"
	"room-booking-bff/internal/pkg/errs"
	"room-booking-bff/internal/usecase/commands"
	"room-booking-bff/internal/usecase/queries"
	"room-booking-bff/tests/common/builder"
	"room-booking-bff/tests/common/httptest"
	"room-booking-bff/tests/common/testutil"
	commandsmock "room-booking-bff/tests/mock/commands"
	queriesmock "room-booking-bff/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CancelRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCancelRequestCommands
	mockQueries  *queriesmock.MockCancelRequestQueries
	handler      *api.CancelRequestHandler
}

func (s *CancelRequestHandlerTestSuite) SetupTest() {
	var authMiddleware gin.HandlerFunc
	s.router, authMiddleware = newRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCancelRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCancelRequestQueries(s.mockCtrl)
	s.handler = api.NewCancelRequestHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings/:id/cancel-requests", authMiddleware, s.handler.Create)
	s.router.GET("/cancel-requests", authMiddleware, s.handler.List)
	s.router.POST("/cancel-requests/:id/respond", authMiddleware, s.handler.Respond)
}

func (s *CancelRequestHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *CancelRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCancelRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(CancelRequestHandlerTestSuite))
}

type testCaseCancelRequest struct {
	name       string
	mutate     func(m map[string]any)
	commandErr error
	expectCode int
}

func (s *CancelRequestHandlerTestSuite) TestCreate() {
	url := "/bookings/42/cancel-requests"
	reqBody := map[string]any{"reason": "Room double-booked"}

	s.Run("success: returns the created request", func() {
		created := builder.NewCancelRequestBuilder().WithID(11).MustBuild()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), booking.FormID(42), "Room double-booked").Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "Bob")

		var body queries.CancelRequestView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(11), body.ID)
		s.Equal(cancelrequest.StatusPending, body.Status)
		s.False(body.CanRespond, "the requester cannot answer their own request")
	})

	cases := []testCaseCancelRequest{
		{name: "empty reason", mutate: testutil.Field("reason", ""), commandErr: cancelrequest.ErrEmptyReason, expectCode: http.StatusUnprocessableEntity},
		{name: "reason over 500 characters", mutate: testutil.Field("reason", strings.Repeat("a", 501)), commandErr: cancelrequest.ErrReasonTooLong, expectCode: http.StatusUnprocessableEntity},
		{name: "owner requesting own booking", mutate: testutil.Field("reason", "mine"), commandErr: booking.ErrOwnerCancelsDirectly, expectCode: http.StatusForbidden},
		{name: "booking already over", mutate: testutil.Field("reason", "late"), commandErr: booking.ErrMeetingExpired, expectCode: http.StatusForbidden},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandErr)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "Bob")

			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}
}

func (s *CancelRequestHandlerTestSuite) TestList() {
	s.Run("success: scope is parsed", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), queries.ScopeOwner).
			Return([]*queries.CancelRequestView{{ID: 1, CanRespond: true}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cancel-requests?scope=owner", nil, "Alice")

		var body resdto.CancelRequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Requests, 1)
		s.True(body.Requests[0].CanRespond)
	})

	s.Run("success: default scope is all", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), queries.ScopeAll).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cancel-requests", nil, "Alice")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"requests":[]`)
	})

	s.Run("error: unknown scope", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cancel-requests?scope=everyone", nil, "Alice")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeBadRequest)
	})
}

func (s *CancelRequestHandlerTestSuite) TestRespond() {
	url := "/cancel-requests/11/respond"

	s.Run("success: decision recorded", func() {
		responded := builder.NewCancelRequestBuilder().WithID(11).WithStatus(cancelrequest.StatusApproved).MustBuild()
		s.mockCommands.EXPECT().Respond(gomock.Any(), gomock.Any(), int64(11), "approved", "ok").
			Return(&commands.RespondResult{Request: responded}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"status": "approved", "response_message": "ok"}, "Alice")

		var body resdto.RespondResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(cancelrequest.StatusApproved, body.Request.Status)
		s.Nil(body.Booking)
		s.Empty(body.AutoCancelError)
	})

	s.Run("success: approval that also cancelled the booking", func() {
		responded := builder.NewCancelRequestBuilder().WithID(11).WithStatus(cancelrequest.StatusApproved).MustBuild()
		s.mockCommands.EXPECT().Respond(gomock.Any(), gomock.Any(), int64(11), "approved", "").
			Return(&commands.RespondResult{
				Request: responded,
				Booking: &commands.Outcome{BookingID: booking.FormID(42), Status: commands.OutcomeCancelled},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "approved"}, "Alice")

		var body resdto.RespondResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Booking)
		s.Equal("cancelled", body.Booking.Status)
	})

	s.Run("success: follow-up cancellation failure is reported, not fatal", func() {
		responded := builder.NewCancelRequestBuilder().WithID(11).WithStatus(cancelrequest.StatusApproved).MustBuild()
		s.mockCommands.EXPECT().Respond(gomock.Any(), gomock.Any(), int64(11), "approved", "").
			Return(&commands.RespondResult{Request: responded, AutoCancelErr: errors.New("upstream down")}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "approved"}, "Alice")

		var body resdto.RespondResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotEmpty(body.AutoCancelError)
		s.NotContains(body.AutoCancelError, "upstream down")
	})

	s.Run("error: missing status is rejected before the command", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"response_message": "x"}, "Alice")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: bad id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cancel-requests/0/respond", map[string]any{"status": "approved"}, "Alice")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	statusCases := []struct {
		name string
		err  error
		code int
		want string
	}{
		{"decision not approved or rejected", cancelrequest.ErrInvalidDecision, http.StatusUnprocessableEntity, httperr.CodeValidation},
		{"not the owner", errs.ErrForbidden, http.StatusForbidden, httperr.CodeForbidden},
		{"request gone", commands.ErrCancelRequestNotFound, http.StatusNotFound, httperr.CodeNotFound},
		{"answered concurrently", errs.Wrap(errs.ErrConflict, "PUT cancel_requests"), http.StatusConflict, httperr.CodeConflict},
		{"backend unreachable", errs.Wrap(errs.ErrUpstream, "PUT cancel_requests"), http.StatusBadGateway, httperr.CodeUpstream},
	}
	for _, tc := range statusCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Respond(gomock.Any(), gomock.Any(), int64(11), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "maybe"}, "Alice")

			httptest.AssertErrorCode(s.T(), rec, tc.code, tc.want)
		})
	}
}

//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-desk/internal/handler/api"
	resdto "hotel-desk/internal/handler/dto/response"
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"
	"hotel-desk/tests/common/builder"
	"hotel-desk/tests/common/httptest"
	"hotel-desk/tests/common/testutil"
	commandsmock "hotel-desk/tests/mock/commands"
	queriesmock "hotel-desk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/reservations/next-number", s.handler.NextNumber)
	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations/:number", s.handler.Get)
	s.router.DELETE("/reservations/:number", s.handler.Cancel)
	s.router.GET("/guests/:id/reservations", s.handler.ByGuest)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	stubErr    error
	expectCode int
}

func (s *ReservationHandlerTestSuite) TestNextNumber() {
	s.mockQueries.EXPECT().NextNumber(gomock.Any()).Return(int64(7), nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/next-number", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"number":7}`, rec.Body.String())
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: 201 with the assigned number", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildParams()).Return(b.BuildResult(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", reqBody)

		var body resdto.ReservationCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(1), body.Number)
		s.Equal(int32(101), body.RoomNumber)
	})

	s.Run("success: inline guest details reach the usecase", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("new_guest", map[string]any{
			"name": "Luis Pérez", "phone": "3105550000",
		}))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.CreateReservationParams) (*commands.CreateReservationResult, error) {
				s.Require().NotNil(p.NewGuest)
				s.Equal("Luis Pérez", p.NewGuest.Name)
				return b.BuildResult(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", m)

		s.Equal(http.StatusCreated, rec.Code)
	})

	cases := []testCaseReservation{
		{name: "missing guest_id", mutate: testutil.Field("guest_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing start_date", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
		{name: "no room selected", mutate: testutil.Field("room_number", 0), stubErr: commands.ErrRoomNotSelected, expectCode: http.StatusBadRequest},
		{name: "inverted stay", stubErr: commands.ErrInvalidStay, expectCode: http.StatusBadRequest},
		{name: "unknown room", stubErr: commands.ErrRoomNotFound, expectCode: http.StatusNotFound},
		{name: "unknown guest", stubErr: commands.ErrGuestNotFound, expectCode: http.StatusNotFound},
		{name: "room taken", stubErr: commands.ErrRoomUnavailable, expectCode: http.StatusConflict},
		{name: "duplicate number", stubErr: commands.ErrDuplicateReservation, expectCode: http.StatusConflict},
	}

	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			var mutate []func(map[string]any)
			if tc.mutate != nil {
				mutate = append(mutate, tc.mutate)
			}
			m := testutil.DtoMap(s.T(), reqBody, mutate...)
			if tc.stubErr != nil {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.stubErr)
			}

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", m)

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: dates are rendered as YYYY-MM-DD", func() {
		view := builder.NewReservationBuilder().WithNumber(12).BuildView()
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), int64(12)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/12", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-03-10", body.StartDate)
		s.Equal("2026-03-13", body.EndDate)
		s.Equal(int32(3), body.Nights)
		s.Equal("Ana Torres", body.GuestName)
	})

	s.Run("error: 400 for a non numeric number", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation number")
	})

	s.Run("error: 404 when absent", func() {
		s.mockQueries.EXPECT().GetByNumber(gomock.Any(), int64(99)).Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/99", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(3)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/3", nil)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 on second cancel", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(3)).Return(commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/3", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 for zero", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/0", nil)

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestByGuest() {
	items := []*queries.GuestReservationItem{
		builder.NewReservationBuilder().WithNumber(1).BuildGuestItem(),
		builder.NewReservationBuilder().WithNumber(2).BuildGuestItem(),
	}
	s.mockQueries.EXPECT().GuestReservations(gomock.Any(), "1020304050").Return(items, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/1020304050/reservations", nil)

	var body []resdto.GuestReservationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal(int64(2), body[1].Number)
	s.Equal("2026-03-10", body[0].StartDate)
}

//go:build unit

package api_test

import (
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGuestCommands
	mockQueries  *queriesmock.MockGuestQueries
	handler      *api.GuestHandler
}

func (s *GuestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGuestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGuestQueries(s.mockCtrl)
	s.handler = api.NewGuestHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/guests", s.handler.Create)
	s.router.GET("/guests", s.handler.Find)
	s.router.GET("/guests/:id", s.handler.Get)
	s.router.PUT("/guests/:id", s.handler.Update)
	s.router.PATCH("/guests/:id", s.handler.Patch)
	s.router.DELETE("/guests/:id", s.handler.Delete)
}

func (s *GuestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestHandlerSuite(t *testing.T) {
	suite.Run(t, new(GuestHandlerTestSuite))
}

func (s *GuestHandlerTestSuite) TestCreate() {
	b := builder.NewGuestBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with the stored guest", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildParams()).Return(nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests", reqBody)

		var body resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Phone, body.Phone)
	})

	s.Run("error: 400 when a required field is missing", func() {
		for _, field := range []string{"id", "name", "phone"} {
			s.Run(field, func() {
				m := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests", m)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 when the usecase rejects the phone", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("phone", "12345"))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(commands.ErrInvalidParams)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests", m)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 on duplicate guest", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(commands.ErrDuplicateGuest)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests", reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.ErrDuplicateGuest.Error())
	})

	s.Run("error: 500 hides storage details", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests", reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Create guest failed")
	})
}

func (s *GuestHandlerTestSuite) TestFind() {
	s.Run("success: passes the criterion through", func() {
		views := []*queries.GuestView{builder.NewGuestBuilder().BuildView()}
		s.mockQueries.EXPECT().Find(gomock.Any(), "Ana").Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests?q=Ana", nil)

		var body []resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("Ana Torres", body[0].Name)
	})

	s.Run("success: empty result encodes as an empty array", func() {
		s.mockQueries.EXPECT().Find(gomock.Any(), "").Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *GuestHandlerTestSuite) TestGet() {
	s.Run("error: 404 when the guest does not exist", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "999").Return(nil, queries.ErrGuestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/999", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, queries.ErrGuestNotFound.Error())
	})
}

func (s *GuestHandlerTestSuite) TestUpdate() {
	b := builder.NewGuestBuilder().WithName("Ana María")
	view := b.BuildView()
	body := map[string]any{"name": "Ana María", "phone": view.Phone}

	s.Run("success: replaces both fields", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.BuildParams()).Return(nil)
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/guests/"+view.ID, body)

		var res resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Ana María", res.Name)
	})

	s.Run("error: 404 when nothing was updated", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).Return(commands.ErrGuestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/guests/"+view.ID, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *GuestHandlerTestSuite) TestPatch() {
	existing := builder.NewGuestBuilder().BuildView()

	s.Run("success: absent fields keep the stored value", func() {
		want := commands.GuestParams{ID: existing.ID, Name: existing.Name, Phone: "3119876543"}
		updated := &queries.GuestView{ID: existing.ID, Name: existing.Name, Phone: "3119876543"}

		gomock.InOrder(
			s.mockQueries.EXPECT().Get(gomock.Any(), existing.ID).Return(existing, nil),
			s.mockCommands.EXPECT().Update(gomock.Any(), want).Return(nil),
			s.mockQueries.EXPECT().Get(gomock.Any(), existing.ID).Return(updated, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/guests/"+existing.ID,
			map[string]any{"phone": "3119876543"})

		var res resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("3119876543", res.Phone)
		s.Equal(existing.Name, res.Name)
	})

	s.Run("error: 404 for an unknown guest", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "42").Return(nil, queries.ErrGuestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/guests/42", map[string]any{"name": "X"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *GuestHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "1020304050").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/guests/1020304050", nil)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while reservations reference the guest", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "1020304050").Return(commands.ErrGuestHasReservations)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/guests/1020304050", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

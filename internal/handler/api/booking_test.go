//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.Identity())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.ListForBooker)
	s.router.GET("/bookings/owner", s.handler.ListForOwner)
	s.router.GET("/bookings/:bookingId", s.handler.GetByID)
	s.router.PATCH("/bookings/:bookingId", s.handler.ChangeStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

var handlerNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func (s *BookingHandlerTestSuite) TestCreate() {
	userID := uuid.New()
	view := builder.NewBookingViewBuilder(handlerNow).WithBooker(userID).BuildView()
	reqBody := map[string]any{
		"itemId": view.Item.ID.String(),
		"start":  view.Start.Format(time.RFC3339),
		"end":    view.End.Format(time.RFC3339),
	}

	s.Run("returns 201 with joined view", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), userID, gomock.Any()).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, userID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body["id"])
		s.Equal(string(booking.StatusWaiting), body["status"])
	})

	s.Run("missing identity header flows through as user not defined", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), uuid.Nil, gomock.Any()).Return(nil, errs.ErrUserNotDefined)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "User id header is required")
	})

	s.Run("malformed identity header is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Sharer-User-Id")
	})

	s.Run("owner booking own item reads as not found", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), userID, gomock.Any()).Return(nil, errs.ErrOwnerBooking)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("invalid dates map to 400", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), userID, gomock.Any()).Return(nil, errs.ErrInvalidBookingDate)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking dates")
	})

	s.Run("missing body field is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings",
			map[string]any{"start": view.Start.Format(time.RFC3339)}, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request body")
	})
}

func (s *BookingHandlerTestSuite) TestChangeStatus() {
	ownerID := uuid.New()
	view := builder.NewBookingViewBuilder(handlerNow).WithStatus(booking.StatusApproved).BuildView()

	s.Run("approve passes true to usecase", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), ownerID, view.ID, true).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+view.ID.String()+"?approved=true", nil, ownerID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(string(booking.StatusApproved), body["status"])
	})

	s.Run("reject passes false to usecase", func() {
		rejected := builder.NewBookingViewBuilder(handlerNow).WithStatus(booking.StatusRejected).BuildView()
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), ownerID, rejected.ID, false).Return(&rejected, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+rejected.ID.String()+"?approved=false", nil, ownerID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(string(booking.StatusRejected), body["status"])
	})

	s.Run("missing approved flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+view.ID.String(), nil, ownerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Incorrect parameter")
	})

	s.Run("non-owner maps to 403", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), ownerID, view.ID, true).Return(nil, errs.ErrNotOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+view.ID.String()+"?approved=true", nil, ownerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Only the owner")
	})

	s.Run("double approve maps to 400", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), ownerID, view.ID, true).Return(nil, errs.ErrStatusAlreadyChanged)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/"+view.ID.String()+"?approved=true", nil, ownerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already changed")
	})

	s.Run("malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/bookings/oops?approved=true", nil, ownerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Incorrect parameter")
	})
}

func (s *BookingHandlerTestSuite) TestGetByID() {
	actorID := uuid.New()
	view := builder.NewBookingViewBuilder(handlerNow).BuildView()

	s.Run("returns booking view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), actorID, view.ID).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+view.ID.String(), nil, actorID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
	})

	s.Run("hidden booking maps to 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), actorID, view.ID).Return(nil, errs.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+view.ID.String(), nil, actorID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	actorID := uuid.New()
	view := builder.NewBookingViewBuilder(handlerNow).WithBooker(actorID).BuildView()

	s.Run("defaults state ALL and page 0/10", func() {
		s.mockQueries.EXPECT().
			ListForBooker(gomock.Any(), actorID, "ALL", queries.Page{From: 0, Size: 10}).
			Return([]queries.BookingView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, actorID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("forwards state and page", func() {
		s.mockQueries.EXPECT().
			ListForBooker(gomock.Any(), actorID, "PAST", queries.Page{From: 2, Size: 5}).
			Return([]queries.BookingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?state=PAST&from=2&size=5", nil, actorID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("owner listing hits owner query", func() {
		s.mockQueries.EXPECT().
			ListForOwner(gomock.Any(), actorID, "ALL", queries.Page{From: 0, Size: 10}).
			Return([]queries.BookingView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, actorID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("unknown state token maps to 400 with detail", func() {
		s.mockQueries.EXPECT().
			ListForBooker(gomock.Any(), actorID, "SOMEDAY", gomock.Any()).
			Return(nil, errs.NewIncorrectParameter("state", "SOMEDAY"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?state=SOMEDAY", nil, actorID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Incorrect parameter")
	})

	s.Run("non-numeric from is rejected in the handler", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?from=abc", nil, actorID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Incorrect parameter")
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/domain/request"
	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	handler      *api.RequestHandler
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.Identity())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.handler = api.NewRequestHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/requests", s.handler.Create)
	s.router.GET("/requests", s.handler.ListOwn)
	s.router.GET("/requests/all", s.handler.ListOthers)
	s.router.GET("/requests/:requestId", s.handler.GetByID)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

func (s *RequestHandlerTestSuite) TestCreate() {
	requesterID := uuid.New()
	reqBody := map[string]any{"description": "looking for a cordless drill"}

	s.Run("returns 201 with the stored request", func() {
		created := request.Reconstruct(uuid.New(), requesterID, "looking for a cordless drill", handlerNow)
		s.mockCommands.EXPECT().
			Create(gomock.Any(), requesterID, "looking for a cordless drill").
			Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", reqBody, requesterID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body["id"])
		s.Equal("looking for a cordless drill", body["description"])
		s.Equal([]any{}, body["items"])
	})

	s.Run("missing description is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests",
			map[string]any{}, requesterID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request body")
	})

	s.Run("missing identity header flows through as user not defined", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), uuid.Nil, "looking for a cordless drill").
			Return(nil, errs.ErrUserNotDefined)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "User id header is required")
	})
}

func (s *RequestHandlerTestSuite) TestList() {
	userID := uuid.New()
	view := queries.RequestView{
		ID:          uuid.New(),
		RequesterID: userID,
		Description: "looking for a cordless drill",
		Created:     handlerNow,
	}

	s.Run("own requests", func() {
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), userID).Return([]queries.RequestView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests", nil, userID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(view.ID.String(), body[0]["id"])
	})

	s.Run("others listing defaults page 0/10", func() {
		s.mockQueries.EXPECT().
			ListOthers(gomock.Any(), userID, queries.Page{From: 0, Size: 10}).
			Return([]queries.RequestView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/all", nil, userID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("others listing forwards page", func() {
		s.mockQueries.EXPECT().
			ListOthers(gomock.Any(), userID, queries.Page{From: 2, Size: 5}).
			Return([]queries.RequestView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/requests/all?from=2&size=5", nil, userID.String())

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

func (s *RequestHandlerTestSuite) TestGetByID() {
	userID := uuid.New()
	view := queries.RequestView{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		Description: "looking for a cordless drill",
		Created:     handlerNow,
		Items:       []queries.ItemView{{ID: uuid.New(), Name: "cordless drill", Available: true}},
	}

	s.Run("returns request with answering items", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), userID, view.ID).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/requests/"+view.ID.String(), nil, userID.String())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body["id"])
		items, ok := body["items"].([]any)
		s.Require().True(ok)
		s.Len(items, 1)
	})

	s.Run("missing request maps to 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), userID, view.ID).Return(nil, errs.ErrRequestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/requests/"+view.ID.String(), nil, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})

	s.Run("malformed request id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/requests/oops", nil, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Incorrect parameter")
	})
}

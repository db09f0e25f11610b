package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/internal/service/sessionservice"
	"github.com/GlebRadaev/spintracker/pkg/auth"
	"github.com/GlebRadaev/spintracker/pkg/utils"
)

func NewMock(t *testing.T) (*SessionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target string, userID int, sessionID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := req.Context()
	if userID != 0 {
		ctx = context.WithValue(ctx, auth.UserIDKey, userID)
	}
	if sessionID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", sessionID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

var startTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testSession(id int) *domain.Session {
	return &domain.Session{
		ID:        id,
		UserID:    1,
		StartTime: startTime,
		CreatedAt: startTime,
		UpdatedAt: startTime,
		User:      &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
	}
}

func testDetails(id int) *domain.SessionDetails {
	return &domain.SessionDetails{
		Session: testSession(id),
		Strategy: domain.StrategyReport{
			NextAction: domain.NextAction{
				Action:    domain.ActionBet,
				BetAmount: decimal.RequireFromString("1.00"),
				Reason:    "First spin - start with base bet",
			},
		},
	}
}

func TestCreateSession(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:   "Created",
			userID: 1,
			prepareMock: func() {
				service.EXPECT().CreateSession(gomock.Any(), 1).Return(testSession(7), nil)
			},
			expectedCode:    http.StatusCreated,
			expectedMessage: "Session created successfully",
		},
		{
			name:            "Unauthenticated",
			prepareMock:     func() {},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Unauthenticated",
		},
		{
			name:   "Service failure",
			userID: 1,
			prepareMock: func() {
				service.EXPECT().CreateSession(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Failed to create session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.CreateSession(rr, newRequest(http.MethodPost, "/api/sessions", tt.userID, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMessage, decode(t, rr).Message)
		})
	}
}

func TestCreateSession_Body(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().CreateSession(gomock.Any(), 1).Return(testSession(7), nil)
	rr := httptest.NewRecorder()

	handler.CreateSession(rr, newRequest(http.MethodPost, "/api/sessions", 1, ""))

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.EqualValues(t, 7, body.Data["id"])
	assert.EqualValues(t, 1, body.Data["user_id"])
	assert.Nil(t, body.Data["end_time"])
	assert.Contains(t, body.Data, "start_time")
}

func TestListSessions(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Sessions found",
			prepareMock: func() {
				service.EXPECT().ListSessions(gomock.Any(), 1).Return([]domain.Session{*testSession(2), *testSession(1)}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No sessions",
			prepareMock: func() {
				service.EXPECT().ListSessions(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().ListSessions(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.ListSessions(rr, newRequest(http.MethodGet, "/api/sessions", 1, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetSession(t *testing.T) {
	handler, service := NewMock(t)

	base := decimal.RequireFromString("2")
	maxBet := decimal.RequireFromString("50")

	tests := []struct {
		name            string
		target          string
		sessionID       string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
		expectedError   string
	}{
		{
			name:      "Default parameters",
			target:    "/api/sessions/7",
			sessionID: "7",
			prepareMock: func() {
				service.EXPECT().GetSessionDetails(gomock.Any(), 7, 1, domain.StrategyOverrides{}).Return(testDetails(7), nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Session retrieved successfully",
		},
		{
			name:      "Query overrides",
			target:    "/api/sessions/7?base_bet=2&max_bet=50",
			sessionID: "7",
			prepareMock: func() {
				service.EXPECT().GetSessionDetails(gomock.Any(), 7, 1, domain.StrategyOverrides{BaseBet: &base, MaxBet: &maxBet}).Return(testDetails(7), nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Session retrieved successfully",
		},
		{
			name:            "Malformed query",
			target:          "/api/sessions/7?base_bet=abc",
			sessionID:       "7",
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid strategy parameters",
			expectedError:   "The base_bet parameter must be a valid number.",
		},
		{
			name:      "Rejected parameters",
			target:    "/api/sessions/7?base_bet=100&max_bet=50",
			sessionID: "7",
			prepareMock: func() {
				service.EXPECT().GetSessionDetails(gomock.Any(), 7, 1, gomock.Any()).
					Return(nil, domain.NewError(domain.ErrInvalidParameter, "Base bet cannot exceed maximum bet"))
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid strategy parameters",
			expectedError:   "Base bet cannot exceed maximum bet",
		},
		{
			name:            "Malformed id",
			target:          "/api/sessions/abc",
			sessionID:       "abc",
			prepareMock:     func() {},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Session not found",
		},
		{
			name:      "Missing session",
			target:    "/api/sessions/99",
			sessionID: "99",
			prepareMock: func() {
				service.EXPECT().GetSessionDetails(gomock.Any(), 99, 1, domain.StrategyOverrides{}).Return(nil, sessionservice.ErrSessionNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Session not found",
			expectedError:   sessionservice.ErrSessionNotFound.Detail,
		},
		{
			name:      "Foreign session",
			target:    "/api/sessions/8",
			sessionID: "8",
			prepareMock: func() {
				service.EXPECT().GetSessionDetails(gomock.Any(), 8, 1, domain.StrategyOverrides{}).Return(nil, sessionservice.ErrViewForbidden)
			},
			expectedCode:    http.StatusForbidden,
			expectedMessage: "Unauthorized access",
			expectedError:   "You can only access your own sessions.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.GetSession(rr, newRequest(http.MethodGet, tt.target, 1, tt.sessionID))

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decode(t, rr)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestCloseSession(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
		expectedError   string
	}{
		{
			name: "Closed",
			prepareMock: func() {
				details := testDetails(7)
				end := startTime.Add(time.Hour)
				details.Session.EndTime = &end
				service.EXPECT().CloseSession(gomock.Any(), 7, 1).Return(details, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Session closed successfully",
		},
		{
			name: "Already closed",
			prepareMock: func() {
				service.EXPECT().CloseSession(gomock.Any(), 7, 1).Return(nil, sessionservice.ErrSessionAlreadyClosed)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid operation",
			expectedError:   "Session is already closed.",
		},
		{
			name: "Foreign session",
			prepareMock: func() {
				service.EXPECT().CloseSession(gomock.Any(), 7, 1).Return(nil, sessionservice.ErrCloseForbidden)
			},
			expectedCode:    http.StatusForbidden,
			expectedMessage: "Unauthorized access",
			expectedError:   "You can only close your own sessions.",
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().CloseSession(gomock.Any(), 7, 1).Return(nil, errors.New("db down"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Failed to close session",
			expectedError:   "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.CloseSession(rr, newRequest(http.MethodPut, "/api/sessions/7/close", 1, "7"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decode(t, rr)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}

func TestDeleteSession(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Deleted",
			prepareMock: func() {
				service.EXPECT().DeleteSession(gomock.Any(), 7, 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing session",
			prepareMock: func() {
				service.EXPECT().DeleteSession(gomock.Any(), 7, 1).Return(sessionservice.ErrSessionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Foreign session",
			prepareMock: func() {
				service.EXPECT().DeleteSession(gomock.Any(), 7, 1).Return(sessionservice.ErrDeleteForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.DeleteSession(rr, newRequest(http.MethodDelete, "/api/sessions/7", 1, "7"))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

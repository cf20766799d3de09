package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/mocks"
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestAuthSession(t *testing.T) {
	validToken := uuid.New()

	sessions := new(mocks.MockSessionRepo)
	sessions.On("FindValidSession", mock.Anything, validToken).
		Return(&entity.SessionOperator{
			Session:  entity.Session{OperatorID: 9, Token: validToken},
			Username: "clerk1",
			Role:     entity.RoleClerk,
		}, nil)
	sessions.On("FindValidSession", mock.Anything, uuid.Nil).
		Return(nil, apperror.New(apperror.KindConnectivity, "session.find", "connection refused"))
	sessions.On("FindValidSession", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(nil, nil)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: "Bearer " + validToken.String(), wantStatus: http.StatusOK},
		{name: "lower case scheme", header: "bearer " + validToken.String(), wantStatus: http.StatusOK},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + validToken.String(), wantStatus: http.StatusUnauthorized},
		{name: "not a uuid", header: "Bearer abc", wantStatus: http.StatusUnauthorized},
		{name: "unknown session", header: "Bearer " + uuid.NewString(), wantStatus: http.StatusUnauthorized},
		{name: "database down", header: "Bearer " + uuid.Nil.String(), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var actor string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				actor = utils.GetActorFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthSession(sessions, zap.NewNop())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "clerk1", actor)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "admin allowed", role: "admin", wantStatus: http.StatusOK},
		{name: "clerk denied", role: "clerk", wantStatus: http.StatusForbidden},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/rooms", nil)
			if tt.role != "" {
				req = req.WithContext(utils.SetOperatorContext(req.Context(), 1, "someone", tt.role))
			}
			rec := httptest.NewRecorder()

			RequireRole(zap.NewNop(), entity.RoleAdmin)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRecover(t *testing.T) {
	panics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recover(zap.NewNop())(panics).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

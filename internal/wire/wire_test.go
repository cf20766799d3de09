package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/event"
	"cinema-manager/internal/mocks"
	"cinema-manager/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var (
	adminToken = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	clerkToken = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
)

func testApp() *App {
	sessions := new(mocks.MockSessionRepo)
	sessions.On("FindValidSession", mock.Anything, adminToken).
		Return(&entity.SessionOperator{Session: entity.Session{OperatorID: 1, Token: adminToken}, Username: "admin", Role: entity.RoleAdmin}, nil)
	sessions.On("FindValidSession", mock.Anything, clerkToken).
		Return(&entity.SessionOperator{Session: entity.Session{OperatorID: 2, Token: clerkToken}, Username: "clerk1", Role: entity.RoleClerk}, nil)
	sessions.On("FindValidSession", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(nil, nil)

	config := &utils.Config{
		App:     utils.AppConfig{Name: "cinema-manager", RequestTimeout: 5 * time.Second},
		Booking: utils.BookingConfig{TicketPrice: decimal.RequireFromString("10.00")},
	}

	return Wiring(&repository.Repository{Session: sessions}, event.NoopPublisher{}, nil, config, zap.NewNop())
}

func TestRoutesAreGuarded(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		token      uuid.UUID
		body       string
		wantStatus int
	}{
		{name: "health is public", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "tickets need a session", method: http.MethodGet, path: "/api/tickets", wantStatus: http.StatusUnauthorized},
		{name: "unknown session", method: http.MethodGet, path: "/api/audit", token: uuid.New(), wantStatus: http.StatusUnauthorized},
		{name: "clerk cannot add rooms", method: http.MethodPost, path: "/api/rooms", token: clerkToken, body: `{}`, wantStatus: http.StatusForbidden},
		{name: "clerk cannot read reports", method: http.MethodGet, path: "/api/reports/occupancy", token: clerkToken, wantStatus: http.StatusForbidden},
		{name: "clerk cannot create operators", method: http.MethodPost, path: "/api/operators", token: clerkToken, body: `{}`, wantStatus: http.StatusForbidden},
		{name: "clerk reaches booking", method: http.MethodPost, path: "/api/tickets", token: clerkToken, body: "", wantStatus: http.StatusBadRequest},
		{name: "admin reaches operators", method: http.MethodPost, path: "/api/operators", token: adminToken, body: "", wantStatus: http.StatusBadRequest},
		{name: "bad path id", method: http.MethodGet, path: "/api/screenings/x/seat-map", token: clerkToken, wantStatus: http.StatusBadRequest},
		{name: "bad ticket id", method: http.MethodGet, path: "/api/tickets/x", token: clerkToken, wantStatus: http.StatusBadRequest},
		{name: "clerk cannot read weekly revenue", method: http.MethodGet, path: "/api/reports/revenue/weekly", token: clerkToken, wantStatus: http.StatusForbidden},
		{name: "weekly revenue rejects bad date", method: http.MethodGet, path: "/api/reports/revenue/weekly?end_date=someday", token: adminToken, wantStatus: http.StatusBadRequest},
		{name: "occupancy rejects bad room", method: http.MethodGet, path: "/api/reports/occupancy?room_id=x", token: adminToken, wantStatus: http.StatusBadRequest},
		{name: "occupancy rejects bad limit", method: http.MethodGet, path: "/api/reports/occupancy?limit=500", token: adminToken, wantStatus: http.StatusBadRequest},
	}

	app := testApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != uuid.Nil {
				req.Header.Set("Authorization", "Bearer "+tt.token.String())
			}
			rec := httptest.NewRecorder()

			app.Router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

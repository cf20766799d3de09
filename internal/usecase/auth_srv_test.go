package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/mocks"
	"cinema-manager/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	operators *mocks.MockOperatorRepo
	sessions  *mocks.MockSessionRepo
	service   AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		operators: new(mocks.MockOperatorRepo),
		sessions:  new(mocks.MockSessionRepo),
	}
	t.Cleanup(func() {
		mock.AssertExpectationsForObjects(t, f.operators, f.sessions)
	})

	config := testConfig()
	config.Session.ExpiryHours = 2
	f.service = NewAuthService(&repository.Repository{
		Operator: f.operators,
		Session:  f.sessions,
	}, config, zap.NewNop())
	return f
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestLogin(t *testing.T) {
	operator := &entity.Operator{
		Base:         entity.Base{ID: 4},
		Username:     "clerk1",
		PasswordHash: hashed(t, "secret-pass"),
		Role:         entity.RoleClerk,
		IsActive:     true,
	}
	f := newAuthFixture(t)
	f.operators.On("FindByUsername", mock.Anything, "clerk1").Return(operator, nil).Once()

	var session *entity.Session
	f.sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
		return s.OperatorID == 4
	})).Run(func(args mock.Arguments) {
		session = args.Get(1).(*entity.Session)
	}).Return(nil).Once()

	got, err := f.service.Login(context.Background(), &request.LoginRequest{Username: "clerk1", Password: "secret-pass"}, "curl", "10.0.0.1")
	require.NoError(t, err)

	require.NotNil(t, session)
	assert.Equal(t, session.Token.String(), got.Token)
	assert.Equal(t, entity.RoleClerk, got.Role)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), got.ExpiresAt, time.Minute)
	require.NotNil(t, session.IPAddress)
	assert.Equal(t, "10.0.0.1", *session.IPAddress)
}

func TestLoginFailures(t *testing.T) {
	operator := &entity.Operator{
		Base:         entity.Base{ID: 4},
		Username:     "clerk1",
		PasswordHash: hashed(t, "secret-pass"),
		Role:         entity.RoleClerk,
	}

	tests := []struct {
		name    string
		req     request.LoginRequest
		active  bool
		wantErr error
	}{
		{name: "unknown operator", req: request.LoginRequest{Username: "nobody", Password: "secret-pass"}, active: true, wantErr: ErrInvalidCredentials},
		{name: "wrong password", req: request.LoginRequest{Username: "clerk1", Password: "wrong-pass"}, active: true, wantErr: ErrInvalidCredentials},
		{name: "inactive operator", req: request.LoginRequest{Username: "clerk1", Password: "secret-pass"}, wantErr: ErrOperatorInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := *operator
			op.IsActive = tt.active
			f := newAuthFixture(t)
			f.operators.On("FindByUsername", mock.Anything, "clerk1").Return(&op, nil).Maybe()
			f.operators.On("FindByUsername", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

			got, err := f.service.Login(context.Background(), &tt.req, "", "")

			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestLogoutRejectsMalformedToken(t *testing.T) {
	f := newAuthFixture(t)
	assert.ErrorIs(t, f.service.Logout(context.Background(), "not-a-uuid"), ErrInvalidToken)
	f.sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}

func TestLogoutRevokes(t *testing.T) {
	token := uuid.New()
	f := newAuthFixture(t)
	f.sessions.On("Revoke", mock.Anything, token).Return(nil).Once()

	require.NoError(t, f.service.Logout(context.Background(), token.String()))
}

func TestCleanExpiredSessions(t *testing.T) {
	f := newAuthFixture(t)
	f.sessions.On("CleanExpiredSessions", mock.Anything).Return(int64(3), nil).Once()

	got, err := f.service.CleanExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestBootstrapAdmin(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		existing    int64
		wantCreated bool
	}{
		{name: "empty table", username: "admin", password: "admin-pass", wantCreated: true},
		{name: "operators exist", username: "admin", password: "admin-pass", existing: 2},
		{name: "not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			operators := new(mocks.MockOperatorRepo)
			defer operators.AssertExpectations(t)

			operators.On("Count", mock.Anything).Return(tt.existing, nil).Maybe()
			if tt.wantCreated {
				operators.On("Create", mock.Anything, mock.MatchedBy(func(o *entity.Operator) bool {
					return o.Username == tt.username && o.Role == entity.RoleAdmin && o.IsActive &&
						utils.CheckPasswordHash(tt.password, o.PasswordHash)
				})).Return(nil).Once()
			}

			config := testConfig()
			config.Admin = utils.AdminConfig{Username: tt.username, Password: tt.password}

			err := NewAuthService(&repository.Repository{Operator: operators}, config, zap.NewNop()).BootstrapAdmin(context.Background())
			require.NoError(t, err)

			if !tt.wantCreated {
				operators.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

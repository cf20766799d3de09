package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultSessionExpiry = 12 * time.Hour

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	CreateOperator(ctx context.Context, req *request.CreateOperatorRequest) (*response.OperatorResponse, error)
	BootstrapAdmin(ctx context.Context) error
	CleanExpiredSessions(ctx context.Context) (int64, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	// 1. Validate
	if err := utils.ValidationError("auth.login", req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Find operator
	operator, err := s.repo.Operator.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find operator: %w", err)
	}
	if operator == nil {
		s.log.Warn("Operator not found for login", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, operator.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("operator_id", operator.ID))
		return nil, ErrInvalidCredentials
	}

	// 4. Inactive operators keep their history but cannot log in
	if !operator.IsActive {
		s.log.Warn("Inactive operator tried to login", zap.Int64("operator_id", operator.ID))
		return nil, ErrOperatorInactive
	}

	// 5. Create session
	session, err := s.createSession(ctx, operator.ID, userAgent, ipAddress)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.Int64("operator_id", operator.ID))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("Operator logged in",
		zap.Int64("operator_id", operator.ID),
		zap.String("username", operator.Username),
	)

	resp := response.AuthToResponse(operator, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return ErrInvalidToken
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("Operator logged out")
	return nil
}

func (s *authService) CreateOperator(ctx context.Context, req *request.CreateOperatorRequest) (*response.OperatorResponse, error) {
	if err := utils.ValidationError("auth.create_operator", req); err != nil {
		return nil, err
	}

	operator, err := s.createOperator(ctx, req.Username, req.Password, entity.OperatorRole(req.Role))
	if err != nil {
		return nil, err
	}

	resp := response.OperatorToResponse(operator)
	return &resp, nil
}

// BootstrapAdmin seeds the configured admin account on an empty operators
// table. It is a no-op once any operator exists or when no admin is
// configured.
func (s *authService) BootstrapAdmin(ctx context.Context) error {
	username := strings.TrimSpace(s.config.Admin.Username)
	if username == "" || s.config.Admin.Password == "" {
		s.log.Debug("No bootstrap admin configured")
		return nil
	}

	count, err := s.repo.Operator.Count(ctx)
	if err != nil {
		return fmt.Errorf("count operators: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := s.createOperator(ctx, username, s.config.Admin.Password, entity.RoleAdmin); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	return nil
}

func (s *authService) CleanExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.log.Info("Expired sessions removed", zap.Int64("count", removed))
	}
	return removed, nil
}

func (s *authService) createOperator(ctx context.Context, username, password string, role entity.OperatorRole) (*entity.Operator, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	operator := &entity.Operator{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.Operator.Create(ctx, operator); err != nil {
		return nil, fmt.Errorf("create operator: %w", err)
	}

	s.log.Info("Operator created",
		zap.Int64("operator_id", operator.ID),
		zap.String("username", operator.Username),
		zap.String("role", string(operator.Role)),
	)
	return operator, nil
}

func (s *authService) createSession(ctx context.Context, operatorID int64, userAgent, ipAddress string) (*entity.Session, error) {
	expiry := defaultSessionExpiry
	if s.config != nil && s.config.Session.ExpiryHours > 0 {
		expiry = time.Duration(s.config.Session.ExpiryHours) * time.Hour
	}

	now := time.Now()
	session := &entity.Session{
		ID:         uuid.New(),
		OperatorID: operatorID,
		Token:      utils.GenerateSessionToken(),
		ExpiresAt:  now.Add(expiry),
		CreatedAt:  now,
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

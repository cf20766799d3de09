package response

import (
	"time"

	"cinema-manager/internal/data/entity"
)

type AuthResponse struct {
	OperatorID int64               `json:"operator_id"`
	Username   string              `json:"username"`
	Role       entity.OperatorRole `json:"role"`
	Token      string              `json:"token"`
	ExpiresAt  time.Time           `json:"expires_at"`
}

type OperatorResponse struct {
	ID        int64               `json:"id"`
	Username  string              `json:"username"`
	Role      entity.OperatorRole `json:"role"`
	IsActive  bool                `json:"is_active"`
	CreatedAt time.Time           `json:"created_at"`
}

// Helper converters
func OperatorToResponse(operator *entity.Operator) OperatorResponse {
	return OperatorResponse{
		ID:        operator.ID,
		Username:  operator.Username,
		Role:      operator.Role,
		IsActive:  operator.IsActive,
		CreatedAt: operator.CreatedAt,
	}
}

func AuthToResponse(operator *entity.Operator, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		OperatorID: operator.ID,
		Username:   operator.Username,
		Role:       operator.Role,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}

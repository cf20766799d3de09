package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID         uuid.UUID  `db:"id"`
	OperatorID int64      `db:"operator_id"`
	Token      uuid.UUID  `db:"token"`
	UserAgent  *string    `db:"user_agent"`
	IPAddress  *string    `db:"ip_address"`
	ExpiresAt  time.Time  `db:"expires_at"`
	RevokedAt  *time.Time `db:"revoked_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

// SessionOperator is a valid session joined with its operator.
type SessionOperator struct {
	Session
	Username string       `db:"username"`
	Role     OperatorRole `db:"role"`
}

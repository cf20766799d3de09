package entity

type OperatorRole string

const (
	RoleAdmin OperatorRole = "admin"
	RoleClerk OperatorRole = "clerk"
)

type Operator struct {
	Base
	Username     string       `db:"username"`
	PasswordHash string       `db:"password_hash"`
	Role         OperatorRole `db:"role"`
	IsActive     bool         `db:"is_active"`
}

package utils

import (
	"context"
)

type contextKey string

const (
	OperatorIDKey contextKey = "operator_id"
	UsernameKey   contextKey = "username"
	RoleKey       contextKey = "role"
	TokenKey      contextKey = "token"
)

// SystemActor is recorded when a workflow runs without an operator.
const SystemActor = "system"

func GetOperatorIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(OperatorIDKey).(int64)
	return id, ok
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

// GetActorFromContext returns the username of the operator behind the
// request, or SystemActor.
func GetActorFromContext(ctx context.Context) string {
	if username, ok := ctx.Value(UsernameKey).(string); ok && username != "" {
		return username
	}
	return SystemActor
}

func SetOperatorContext(ctx context.Context, operatorID int64, username, role string) context.Context {
	ctx = context.WithValue(ctx, OperatorIDKey, operatorID)
	ctx = context.WithValue(ctx, UsernameKey, username)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetTokenFromContext returns the session token of the request
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

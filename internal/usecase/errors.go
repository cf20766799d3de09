package usecase

import "cinema-manager/pkg/apperror"

var (
	ErrScreeningOverlap   = apperror.New(apperror.KindConflict, "", "room already has a screening at that time")
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthorized, "", "invalid credentials")
	ErrOperatorInactive   = apperror.New(apperror.KindForbidden, "", "operator account is deactivated")
	ErrInvalidToken       = apperror.New(apperror.KindUnauthorized, "", "invalid session token")
)

package repository

import (
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/database"
)

var (
	ErrRoomNotFound      = apperror.New(apperror.KindNotFound, "", "room not found")
	ErrGenreNotFound     = apperror.New(apperror.KindNotFound, "", "genre not found")
	ErrMovieNotFound     = apperror.New(apperror.KindNotFound, "", "movie not found")
	ErrScreeningNotFound = apperror.New(apperror.KindNotFound, "", "screening not found")
	ErrCustomerNotFound  = apperror.New(apperror.KindNotFound, "", "customer not found")
	ErrTicketNotFound    = apperror.New(apperror.KindNotFound, "", "ticket not found")
	ErrFeedbackNotFound  = apperror.New(apperror.KindNotFound, "", "feedback not found")
	ErrOperatorNotFound  = apperror.New(apperror.KindNotFound, "", "operator not found")
	ErrSessionNotFound   = apperror.New(apperror.KindNotFound, "", "session not found or already revoked")

	ErrSeatTaken              = apperror.New(apperror.KindConflict, "", "seat already booked for this screening")
	ErrScreeningSoldOut       = apperror.New(apperror.KindConflict, "", "screening is sold out")
	ErrTicketAlreadyCancelled = apperror.New(apperror.KindConflict, "", "ticket already cancelled")
	ErrGenreExists            = apperror.New(apperror.KindConflict, "", "genre already exists")
	ErrUsernameTaken          = apperror.New(apperror.KindConflict, "", "username already taken")

	ErrStillReferenced = apperror.New(apperror.KindConstraint, "", "record is still referenced by other records")
)

// translate maps a classified write failure onto the domain error registered
// for the violated constraint, if any.
func translate(op string, err error, known map[string]error) error {
	if name := database.ConstraintName(err); name != "" {
		if domainErr, ok := known[name]; ok {
			return domainErr
		}
	}
	return database.Classify(op, err)
}

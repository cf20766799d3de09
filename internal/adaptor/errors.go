package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var errEmptyBody = errors.New("empty request body")

// decodeJSON reads the request body into dst. An empty body is an error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

// pathID reads a positive numeric URL parameter, writing 400 when it is not
// one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// queryID reads an optional positive id from the query string. An absent
// parameter yields nil.
func queryID(w http.ResponseWriter, r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := utils.ParseID(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name, nil)
		return nil, false
	}
	return &id, true
}

// writeError maps a classified service error to its HTTP response.
// Internal failures are logged with the cause and answered with a generic
// message.
func writeError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	kind := apperror.KindOf(err)
	message := apperror.MessageOf(err)
	if message == "" {
		message = err.Error()
	}

	if kind == apperror.KindInternal {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" failed",
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("kind", kind.String()))

	switch kind {
	case apperror.KindValidation:
		utils.ResponseBadRequest(w, message, apperror.FieldsOf(err))
	case apperror.KindUnauthorized:
		utils.ResponseUnauthorized(w, message)
	case apperror.KindForbidden:
		utils.ResponseForbidden(w, message)
	case apperror.KindNotFound:
		utils.ResponseNotFound(w, message)
	case apperror.KindConflict:
		utils.ResponseConflict(w, message)
	case apperror.KindConstraint:
		utils.ResponseUnprocessable(w, message)
	case apperror.KindConnectivity:
		utils.ResponseUnavailable(w, "Database unavailable, try again later")
	}
}

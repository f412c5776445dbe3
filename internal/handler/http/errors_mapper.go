package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-campus-blog/internal/app"
	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/service"
	"github.com/MKhiriev/go-campus-blog/internal/utils"
	"github.com/MKhiriev/go-campus-blog/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{utils.ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrDuplicateUser, http.StatusBadRequest},
	{service.ErrDuplicateTitle, http.StatusBadRequest},
	{service.ErrAlreadyVerified, http.StatusBadRequest},
	{service.ErrInvalidOrExpiredToken, http.StatusBadRequest},

	{service.ErrNotVerified, http.StatusUnauthorized},
	{service.ErrIncorrectPassword, http.StatusUnauthorized},
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrUserNoLongerExists, http.StatusUnauthorized},
	{service.ErrStalePasswordChange, http.StatusUnauthorized},

	{service.ErrForbidden, http.StatusForbidden},

	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrResourceNotFound, http.StatusNotFound},
	{ErrRouteNotFound, http.StatusNotFound},

	{ErrTooManyRequests, http.StatusTooManyRequests},

	{service.ErrEmailDeliveryFailed, http.StatusInternalServerError},
}

// statusFromError returns the status code and the client-facing message
// for err. Validation errors carry the validator's text; other known errors
// carry their sentinel's text only, never the wrapped cause.
func statusFromError(err error) (int, string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, "Invalid input data. " + validationErr.Error()
	}

	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status, m.target.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgSomethingWentWrong
}

// writeError answers the request with the error envelope. Outside
// production the full error text is added under "error".
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	resp := models.ErrorResponse{Status: models.StatusFail, Message: message}
	if status >= http.StatusInternalServerError {
		resp.Status = models.StatusError
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	if !h.production {
		resp.Error = err.Error()
	}

	utils.WriteJSON(w, resp, status)
}

func writeMessage(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.StatusResponse{Status: models.StatusSuccess, Message: message}, http.StatusOK)
}

func writeData(w http.ResponseWriter, data any, status int) {
	utils.WriteJSON(w, models.DataResponse{Status: models.StatusSuccess, Data: data}, status)
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/guest-nama/internal/app"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/service"
	"github.com/MKhiriev/guest-nama/internal/store"
	"github.com/MKhiriev/guest-nama/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrEmptyHashHeader, errorResponse{http.StatusBadRequest, app.MsgInvalidBodyHash}},
	{ErrBodyHashMismatch, errorResponse{http.StatusBadRequest, app.MsgInvalidBodyHash}},

	{service.ErrValidationNoUserID, errorResponse{http.StatusBadRequest, app.MsgNoUserIDProvided}},
	{service.ErrRoleNotAllowed, errorResponse{http.StatusBadRequest, app.MsgRoleNotAllowed}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrVersionIsNotSpecified, errorResponse{http.StatusBadRequest, app.MsgVersionIsNotSpecified}},

	{store.ErrPhoneAlreadyExists, errorResponse{http.StatusConflict, app.MsgPhoneAlreadyExists}},
	{store.ErrUnknownUser, errorResponse{http.StatusNotFound, app.MsgUnknownUser}},
	{store.ErrGuestNotFound, errorResponse{http.StatusNotFound, app.MsgGuestNotFound}},
	{store.ErrTaskNotFound, errorResponse{http.StatusNotFound, app.MsgTaskNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err with the request logger and answers with the mapped
// status and an ErrorBody.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	res := responseFromError(err)

	log := logger.FromRequest(r)
	if res.status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Msg(msg)
	}

	utils.WriteError(w, res.message, res.status)
}

package service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rouaze/fwkey-service/internal/app"
	"github.com/rouaze/fwkey-service/internal/ini"
	"github.com/rouaze/fwkey-service/models"
)

// Respond maps the outcome of KeyService.LookupKey to a response record.
//
// A section without the manufacturing field yields 200 with an empty body,
// same as a section whose field is empty.
func Respond(secret string, err error) models.Response {
	switch {
	case err == nil:
		return newResponse(http.StatusOK, secret)
	case errors.Is(err, ErrUnspecifiedRequest):
		return newResponse(http.StatusBadRequest, app.MsgUnspecifiedRequest)
	case errors.Is(err, ini.ErrSectionNotFound):
		return newResponse(http.StatusNotFound, app.MsgKeyNotFound)
	case errors.Is(err, ini.ErrFieldNotFound):
		return newResponse(http.StatusOK, "")
	default:
		return newResponse(http.StatusBadGateway, app.MsgKeyStoreUnavailable)
	}
}

func newResponse(status int, body string) models.Response {
	return models.NewResponse(strconv.Itoa(status), body)
}

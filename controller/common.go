package controller

import (
	"errors"
	"net/http"

	"github.com/fwwkol/openalgo/customerrors"
	"github.com/fwwkol/openalgo/model"

	"github.com/gin-gonic/gin"
)

func respondSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, message string, err error) {
	resp := model.Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

// statusForError maps the two failure tiers onto HTTP codes: caller
// mistakes are 400, missing market data is 404, everything else is a
// server-side failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, customerrors.ErrInvalidOptionSymbol),
		errors.Is(err, customerrors.ErrInvalidExpiryTime),
		errors.Is(err, customerrors.ErrOptionExpired),
		errors.Is(err, customerrors.ErrNonPositiveInput),
		errors.Is(err, customerrors.ErrExpiryRequired),
		errors.Is(err, customerrors.ErrInvalidOffset):
		return http.StatusBadRequest
	case errors.Is(err, customerrors.ErrLtpNotAvailable),
		errors.Is(err, customerrors.ErrSymbolNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

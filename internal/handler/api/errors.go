package api

import (
	"errors"
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError translates usecase errors into HTTP responses. Every handler
// funnels its errors through here so the status mapping lives in one place.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, errs.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
	case errors.Is(err, errs.ErrOwnerBooking):
		// same answer as a missing booking so ownership is not leaked
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrNotOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only the owner may do this", nil)
	case errors.Is(err, errs.ErrEmailAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use", nil)
	case errors.Is(err, errs.ErrUserNotDefined):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "User id header is required", nil)
	case errors.Is(err, errs.ErrInvalidBookingDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking dates", nil)
	case errors.Is(err, errs.ErrItemNotAvailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available", nil)
	case errors.Is(err, errs.ErrStatusAlreadyChanged):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking status already changed", nil)
	case errors.Is(err, errs.ErrCommentNotAllowed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Commenting requires a finished booking", nil)
	case errors.Is(err, errs.ErrIncorrectParameter):
		var param *errs.IncorrectParameterError
		var detail any
		if errors.As(err, &param) {
			detail = gin.H{"param": param.Param, "value": param.Value}
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Incorrect parameter", detail)
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

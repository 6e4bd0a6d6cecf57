package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/gemveer/inventory/internal/api/shared/errors"
)

// respondError maps an executor error to its HTTP status. Anything that is
// not an APIError is masked as an internal error.
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.HTTPStatus(), apiErr)
		return
	}
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError("Internal server error"))
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

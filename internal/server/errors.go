package server

import (
	"errors"
	"net/http"

	dailyvolumedomain "github.com/gasplexhq/gasplex/internal/dailyvolume/domain"
	"github.com/gasplexhq/gasplex/internal/formfield"
	gascostdomain "github.com/gasplexhq/gasplex/internal/gascost/domain"
	gasreportdomain "github.com/gasplexhq/gasplex/internal/gasreport/domain"
	"github.com/gasplexhq/gasplex/internal/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fallbackBadRequestKey marks a request whose uncaught errors answer 400
// instead of 500. Destroy endpoints set it.
const fallbackBadRequestKey = "error.fallback_bad_request"

var ErrInvalidRequest = errors.New("invalid request")

type errorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(c, lastErr.Err)
		c.AbortWithStatusJSON(status, payload)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(c *gin.Context, err error) (int, errorResponse) {
	var report *validation.Report
	if errors.As(err, &report) {
		return http.StatusUnprocessableEntity, errorResponse{
			Status:  "error",
			Message: "validation failed",
			Errors:  report.Fields,
		}
	}

	switch {
	case errors.Is(err, formfield.ErrInvalidAnswers),
		errors.Is(err, dailyvolumedomain.ErrMissingID),
		errors.Is(err, gascostdomain.ErrMissingID),
		errors.Is(err, gasreportdomain.ErrMissingID),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorResponse{
			Status:  "error",
			Message: err.Error(),
		}
	case errors.Is(err, dailyvolumedomain.ErrNotFound),
		errors.Is(err, gascostdomain.ErrNotFound),
		errors.Is(err, gasreportdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorResponse{
			Status:  "error",
			Message: err.Error(),
		}
	}

	if c.GetBool(fallbackBadRequestKey) {
		return http.StatusBadRequest, errorResponse{
			Status:  "error",
			Message: err.Error(),
		}
	}
	return http.StatusInternalServerError, errorResponse{
		Status:  "error",
		Message: "internal server error",
	}
}

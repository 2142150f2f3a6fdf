package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recyclechain/ewaste-backend/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps the pipeline error taxonomy onto HTTP statuses. Ledger and
// classifier failures are upstream problems, hence 502.
func statusFor(err error) int {
	var subErr *model.SubmissionError

	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNoSigner):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrAlreadyVerified):
		return http.StatusConflict
	case errors.Is(err, model.ErrMissingEvidence):
		return http.StatusPreconditionFailed
	case errors.Is(err, model.ErrClassificationMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrClassifierUnavailable):
		return http.StatusBadGateway
	case errors.As(err, &subErr):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrConfig):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), errorResponse{Error: err.Error()})
}

package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-live/internal/auctionerrors"
	"auction-live/internal/validator"
	"auction-live/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrGuestNotFound):
		return http.StatusNotFound, "guest not found"
	case errors.Is(err, auctionerrors.ErrUsernameTaken):
		return http.StatusConflict, "username already in use"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for auction"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusServiceUnavailable, "storage conflict, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RejectionStatus picks the HTTP status for a validation rejection. These
// are expected outcomes, not faults.
func RejectionStatus(r *validator.Rejection) int {
	switch r.Reason {
	case validator.ReasonNotStarted, validator.ReasonFinished:
		return http.StatusConflict
	case validator.ReasonTooSoon:
		return http.StatusTooManyRequests
	default:
		return http.StatusUnprocessableEntity
	}
}

// NewRejectionResponse converts a validator rejection into its wire form.
func NewRejectionResponse(r *validator.Rejection) RejectionResponse {
	return RejectionResponse{
		Reason:      string(r.Reason),
		Message:     r.Message,
		WaitSeconds: r.Wait.Seconds(),
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

package validator

import (
	"fmt"
	"math"
	"time"

	"auction-live/internal/auctionerrors"
	"auction-live/internal/models"
)

// Bid acceptance limits.
const (
	MaxBidAmount   int64 = 512_000_000
	MinBidInterval       = 2 * time.Second
)

// Reason is a machine-readable rejection code.
type Reason string

const (
	ReasonNotStarted            Reason = "not_started"
	ReasonFinished              Reason = "finished"
	ReasonLimitExceeded         Reason = "limit_exceeded"
	ReasonTooSoon               Reason = "too_soon"
	ReasonBelowCurrentPrice     Reason = "below_current_price"
	ReasonInsufficientIncrement Reason = "insufficient_increment"
	ReasonBelowStartingPrice    Reason = "below_starting_price"
)

// Rejection describes why a candidate bid was refused. It is a structured
// result, not a fault: the same inputs always produce the same rejection.
type Rejection struct {
	Reason  Reason
	Message string
	// Wait is how long the bidder must hold off, set only for ReasonTooSoon.
	Wait time.Duration
}

// Error implements error so a Rejection can travel through error-returning
// call sites; handlers match it with errors.Is against ErrBidRejected.
func (r *Rejection) Error() string {
	return r.Message
}

// Is lets errors.Is(rej, auctionerrors.ErrBidRejected) succeed.
func (r *Rejection) Is(target error) bool {
	return target == auctionerrors.ErrBidRejected
}

func reject(reason Reason, format string, args ...any) *Rejection {
	return &Rejection{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Validate applies the bid-validity rules in order, first failure wins.
// It is pure: no rule application has side effects, and callers may replay
// it with the same inputs and get the same answer. A nil return means the
// bid is acceptable against the given auction state.
func Validate(a models.Auction, amount int64, lastBidTime *time.Time, now time.Time) *Rejection {
	switch a.Status(now) {
	case models.StatusUpcoming:
		return reject(ReasonNotStarted, "the auction has not started yet")
	case models.StatusFinished:
		return reject(ReasonFinished, "the auction has finished")
	}

	if amount > MaxBidAmount {
		return reject(ReasonLimitExceeded, "bid cannot exceed $%d", MaxBidAmount)
	}

	if lastBidTime != nil {
		sinceLast := now.Sub(*lastBidTime)
		if sinceLast < MinBidInterval {
			wait := roundTenth(MinBidInterval - sinceLast)
			r := reject(ReasonTooSoon, "wait %.1f seconds before bidding again", wait.Seconds())
			r.Wait = wait
			return r
		}
	}

	switch a.Mode {
	case models.ModeSilent:
		// The current price is hidden from other bidders in a silent
		// auction, so only the starting price bounds the bid.
		if amount < a.StartingPrice {
			return reject(ReasonBelowStartingPrice, "bid must be at least the starting price ($%d)", a.StartingPrice)
		}
	default:
		if amount <= a.CurrentPrice {
			return reject(ReasonBelowCurrentPrice, "bid must be greater than the current price ($%d)", a.CurrentPrice)
		}
		if increment := amount - a.CurrentPrice; a.InAntiSnipingWindow(now) && increment < models.AntiSnipingMinIncrement {
			return reject(ReasonInsufficientIncrement,
				"anti-sniping mode active: increment must be at least $%d (you raised $%d)",
				models.AntiSnipingMinIncrement, increment)
		}
	}

	return nil
}

// roundTenth rounds a duration to the nearest tenth of a second, matching
// the wait time surfaced to bidders.
func roundTenth(d time.Duration) time.Duration {
	return time.Duration(math.Round(d.Seconds()*10)) * 100 * time.Millisecond
}

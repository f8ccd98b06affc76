package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrGuestNotFound   = errors.New("guest not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrUsernameTaken   = errors.New("username already in use")
)

// business logic errors
var (
	ErrInvalidBid  = errors.New("invalid bid")
	ErrBidRejected = errors.New("bid rejected")
	ErrConflict    = errors.New("storage conflict, retry")
)

package models

import "time"

// AuctionMode selects the bidding rules for an auction.
type AuctionMode string

const (
	ModeStandard AuctionMode = "standard" // open bidding: every bid must beat the current price
	ModeSilent   AuctionMode = "silent"   // sealed bidding: each bidder holds one revisable bid
)

// AuctionStatus is derived from the clock on every read, never stored.
type AuctionStatus string

const (
	StatusUpcoming AuctionStatus = "upcoming"
	StatusOngoing  AuctionStatus = "ongoing"
	StatusFinished AuctionStatus = "finished"
)

// Anti-sniping parameters: a large bid landing inside the closing window
// pushes the end time out so the auction cannot be won by a last-second bid.
const (
	AntiSnipingWindow             = 30 * time.Second
	AntiSnipingExtension          = 30 * time.Second
	AntiSnipingMinIncrement int64 = 1_000_000
)

// Auction represents one sellable item and its pricing state.
// Amounts are whole currency units, no fractional cents.
type Auction struct {
	AuctionID         string      `json:"auction_id"`
	Name              string      `json:"name"`
	StartingPrice     int64       `json:"starting_price"`
	CurrentPrice      int64       `json:"current_price"`
	StartTime         time.Time   `json:"start_time"`
	EndTime           time.Time   `json:"end_time"`
	IsActive          bool        `json:"is_active"`
	Mode              AuctionMode `json:"mode"`
	AntiSnipingActive bool        `json:"anti_sniping_active"`
	CreatedAt         time.Time   `json:"created_at"`
}

// Status computes the lifecycle state at the given instant.
func (a Auction) Status(now time.Time) AuctionStatus {
	if now.Before(a.StartTime) {
		return StatusUpcoming
	}
	if !a.IsActive || now.After(a.EndTime) {
		return StatusFinished
	}
	return StatusOngoing
}

// TimeRemaining returns how long until the auction closes, zero when it is
// not ongoing.
func (a Auction) TimeRemaining(now time.Time) time.Duration {
	if a.Status(now) != StatusOngoing {
		return 0
	}
	return a.EndTime.Sub(now)
}

// InAntiSnipingWindow reports whether the auction is inside its closing window.
func (a Auction) InAntiSnipingWindow(now time.Time) bool {
	return a.Status(now) == StatusOngoing && a.TimeRemaining(now) <= AntiSnipingWindow
}

// ShouldExtend decides the anti-sniping extension for an accepted bid.
// The increment must be measured against the pre-bid price; a stale price
// reference produces incorrect extensions. Only standard auctions extend,
// since the rule is meaningless while the price is hidden.
func (a Auction) ShouldExtend(amount, previousPrice int64, now time.Time) bool {
	if a.Mode != ModeStandard {
		return false
	}
	return a.InAntiSnipingWindow(now) && amount-previousPrice >= AntiSnipingMinIncrement
}

// GuestIdentity is the ephemeral pseudonym bids are attributed to.
// Display names are unique across the platform.
type GuestIdentity struct {
	Username    string     `json:"username"`
	LastBidTime *time.Time `json:"last_bid_time,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Bid is one accepted bid. Standard-mode bids are immutable once created;
// a silent-mode bid is the bidder's single live row and may be replaced.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	Bidder    string    `json:"bidder"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

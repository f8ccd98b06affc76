package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	Username string `json:"username" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	Bidder    string `json:"bidder"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// SubmitBidResponse reports an accepted bid together with the state change
// it caused.
type SubmitBidResponse struct {
	Bid        BidResponse `json:"bid"`
	NewPrice   int64       `json:"new_price"`
	Extended   bool        `json:"extended"`
	NewEndTime string      `json:"new_end_time,omitempty"`
	Replaced   bool        `json:"replaced"`
	OldAmount  int64       `json:"old_amount,omitempty"`
}

// RejectionResponse is the structured body for a refused bid.
type RejectionResponse struct {
	Reason      string  `json:"reason"`
	Message     string  `json:"message"`
	WaitSeconds float64 `json:"wait_seconds,omitempty"`
}

type JoinRequest struct {
	Username string `json:"username" binding:"required"`
}

type RenameRequest struct {
	NewUsername string `json:"new_username" binding:"required"`
}

type GuestResponse struct {
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

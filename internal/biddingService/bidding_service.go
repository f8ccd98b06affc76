package bidding

import (
	"fmt"
	"sync"
	"time"

	"auction-live/internal/auctionerrors"
	"auction-live/internal/clock"
	"auction-live/internal/models"
	"auction-live/internal/repository"
	"auction-live/internal/validator"
	"auction-live/utils"
)

// BiddingService owns bid acceptance. All bids against one auction are
// serialized through a per-auction lock so validation never runs against a
// stale price; bids against different auctions proceed in parallel.
type BiddingService struct {
	repo  repository.AuctionStore
	clock clock.Clock

	mu    sync.Mutex
	locks map[string]*sync.Mutex // key: auctionID
}

// NewBiddingService creates a new BiddingService instance.
func NewBiddingService(repo repository.AuctionStore, clk clock.Clock) *BiddingService {
	return &BiddingService{
		repo:  repo,
		clock: clk,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the serialization point for one auction, creating it on
// first use.
func (s *BiddingService) lockFor(auctionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[auctionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[auctionID] = l
	}
	return l
}

// BidResult is the structured outcome of a bid submission. A rejected bid is
// a normal result, not an error: Rejection carries the reason code and
// message, and resubmitting the same inputs yields the same rejection.
type BidResult struct {
	Accepted   bool
	Bid        models.Bid
	NewPrice   int64
	Extended   bool
	NewEndTime time.Time
	Outcome    repository.LedgerOutcome
	Rejection  *validator.Rejection
}

// SubmitBid validates and commits a bid. The span from reading the current
// price to writing the new one executes under the auction's lock; nothing
// slower than the in-store commit is held inside it.
func (s *BiddingService) SubmitBid(auctionID, username string, amount int64) (BidResult, error) {
	if auctionID == "" || username == "" {
		return BidResult{}, fmt.Errorf("service: %w - missing auctionID or username", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return BidResult{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	lock := s.lockFor(auctionID)
	lock.Lock()
	defer lock.Unlock()

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	guest, err := s.repo.GetGuest(username)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: failed to resolve bidder %s: %w", username, err)
	}

	now := s.clock.Now()
	if rej := validator.Validate(auction, amount, guest.LastBidTime, now); rej != nil {
		return BidResult{Accepted: false, Rejection: rej}, nil
	}

	// Price and extension are computed from the pre-bid state read under
	// the lock; the commit below applies them in one step.
	previousPrice := auction.CurrentPrice
	newPrice := amount
	if auction.Mode == models.ModeSilent && previousPrice > amount {
		newPrice = previousPrice
	}

	extended := auction.ShouldExtend(amount, previousPrice, now)
	newEndTime := auction.EndTime
	if extended {
		newEndTime = newEndTime.Add(models.AntiSnipingExtension)
	}

	commit := repository.BidCommit{
		Bid: models.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auctionID,
			Bidder:    username,
			Amount:    amount,
			CreatedAt: now,
		},
		Replace:           auction.Mode == models.ModeSilent,
		NewPrice:          newPrice,
		NewEndTime:        newEndTime,
		AntiSnipingActive: auction.AntiSnipingActive || extended,
		BidderLastBid:     now,
	}

	bid, outcome, err := s.repo.CommitBid(commit)
	if err != nil {
		// The store commits all-or-nothing, so nothing happened; the
		// caller may retry.
		return BidResult{}, fmt.Errorf("service: failed to commit bid on auction %s by %s: %w", auctionID, username, err)
	}

	return BidResult{
		Accepted:   true,
		Bid:        bid,
		NewPrice:   newPrice,
		Extended:   extended,
		NewEndTime: newEndTime,
		Outcome:    outcome,
	}, nil
}

// AuctionStatusView is the read-only snapshot served to pollers.
type AuctionStatusView struct {
	AuctionID            string               `json:"auction_id"`
	Status               models.AuctionStatus `json:"status"`
	Mode                 models.AuctionMode   `json:"mode"`
	CurrentPrice         int64                `json:"current_price"`
	TimeRemainingSeconds float64              `json:"time_remaining_seconds"`
	AntiSnipingActive    bool                 `json:"anti_sniping_active"`
	InClosingWindow      bool                 `json:"in_closing_window"`
	EndTime              time.Time            `json:"end_time"`
}

// GetAuctionStatus returns the current derived state of one auction.
func (s *BiddingService) GetAuctionStatus(auctionID string) (AuctionStatusView, error) {
	if auctionID == "" {
		return AuctionStatusView{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return AuctionStatusView{}, fmt.Errorf("service: failed to get status for auction %s: %w", auctionID, err)
	}

	now := s.clock.Now()
	return AuctionStatusView{
		AuctionID:            auction.AuctionID,
		Status:               auction.Status(now),
		Mode:                 auction.Mode,
		CurrentPrice:         auction.CurrentPrice,
		TimeRemainingSeconds: auction.TimeRemaining(now).Seconds(),
		AntiSnipingActive:    auction.AntiSnipingActive,
		InClosingWindow:      auction.InAntiSnipingWindow(now),
		EndTime:              auction.EndTime,
	}, nil
}

// DefaultTopBids is how many bids the feed shows when the caller does not ask
// for a specific count.
const DefaultTopBids = 10

// GetTopBids returns the bid feed for an auction. Standard auctions list
// newest first; silent auctions rank by amount with the earlier bid winning
// ties.
func (s *BiddingService) GetTopBids(auctionID string, n int) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	if n <= 0 {
		n = DefaultTopBids
	}

	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	ordering := repository.ByTimeDesc
	if auction.Mode == models.ModeSilent {
		ordering = repository.ByAmountDesc
	}

	bids, err := s.repo.TopBids(auctionID, n, ordering)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for an auction, with the earlier bid
// winning amount ties.
func (s *BiddingService) GetWinningBid(auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.TopBids(auctionID, 1, repository.ByAmountDesc)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}
	return bids[0], nil
}

// GetOwnBid returns the bidder's live bid on an auction, the one a silent
// resubmission would replace.
func (s *BiddingService) GetOwnBid(auctionID, username string) (models.Bid, error) {
	if auctionID == "" || username == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or username", auctionerrors.ErrInvalidBid)
	}

	bid, err := s.repo.LatestBidFor(auctionID, username)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get own bid for %s on auction %s: %w", username, auctionID, err)
	}
	return bid, nil
}

// JoinAuction creates the guest identity a session bids under.
func (s *BiddingService) JoinAuction(username string) (models.GuestIdentity, error) {
	if username == "" {
		return models.GuestIdentity{}, fmt.Errorf("service: %w - empty username", auctionerrors.ErrInvalidBid)
	}

	guest, err := s.repo.CreateGuest(username, s.clock.Now())
	if err != nil {
		return models.GuestIdentity{}, fmt.Errorf("service: failed to create guest %s: %w", username, err)
	}
	return guest, nil
}

// RenameGuest changes a guest's display name, subject to uniqueness.
func (s *BiddingService) RenameGuest(oldName, newName string) (models.GuestIdentity, error) {
	if oldName == "" || newName == "" {
		return models.GuestIdentity{}, fmt.Errorf("service: %w - empty username", auctionerrors.ErrInvalidBid)
	}

	guest, err := s.repo.RenameGuest(oldName, newName)
	if err != nil {
		return models.GuestIdentity{}, fmt.Errorf("service: failed to rename guest %s: %w", oldName, err)
	}
	return guest, nil
}

package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-live/internal/auctionerrors"
	model "auction-live/internal/models"
)

// BidOrdering selects how TopBids ranks the ledger.
type BidOrdering int

const (
	// ByTimeDesc lists the newest bids first (standard-mode display).
	ByTimeDesc BidOrdering = iota
	// ByAmountDesc ranks by amount, earlier bid winning amount ties
	// (silent-mode ranking). The tie-break must be deterministic: it
	// decides the declared winner.
	ByAmountDesc
)

// OutcomeKind tags what the ledger did with a submitted bid.
type OutcomeKind int

const (
	OutcomeCreated OutcomeKind = iota
	OutcomeReplaced
)

// LedgerOutcome reports whether a commit appended a new row or replaced the
// bidder's live silent-mode row.
type LedgerOutcome struct {
	Kind      OutcomeKind
	OldAmount int64 // set only for OutcomeReplaced
	NewAmount int64
}

// BidCommit is the full post-validation state change for one accepted bid:
// the ledger row, the auction's new pricing fields and the bidder's last-bid
// time. The store applies it all-or-nothing.
type BidCommit struct {
	Bid               model.Bid
	Replace           bool // silent mode: replace the bidder's live row if one exists
	NewPrice          int64
	NewEndTime        time.Time
	AntiSnipingActive bool
	BidderLastBid     time.Time
}

// AuctionStore defines the persistence interface for the bid core.
type AuctionStore interface {
	GetAuction(auctionID string) (model.Auction, error)
	CommitBid(commit BidCommit) (model.Bid, LedgerOutcome, error)
	TopBids(auctionID string, n int, ordering BidOrdering) ([]model.Bid, error)
	LatestBidFor(auctionID, bidder string) (model.Bid, error)
	CreateGuest(username string, now time.Time) (model.GuestIdentity, error)
	GetGuest(username string) (model.GuestIdentity, error)
	RenameGuest(oldName, newName string) (model.GuestIdentity, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction       // key: auctionID
	bids     map[string][]model.Bid         // key: auctionID -> append-only ledger
	guests   map[string]model.GuestIdentity // key: username
}

// NewMemoryStore creates a new in-memory store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
		guests:   make(map[string]model.GuestIdentity),
	}
}

// AddAuction seeds an auction. A zero current price is initialized to the
// starting price.
func (s *MemoryStore) AddAuction(a model.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.CurrentPrice == 0 && a.StartingPrice > 0 {
		a.CurrentPrice = a.StartingPrice
	}
	s.auctions[a.AuctionID] = a
}

// GetAuction returns a snapshot of one auction.
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// CommitBid applies one accepted bid atomically: the ledger row, the
// auction's pricing fields and the bidder's last-bid time. All preconditions
// are checked before the first mutation so a failure leaves every structure
// untouched.
func (s *MemoryStore) CommitBid(commit BidCommit) (model.Bid, LedgerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid := commit.Bid

	auction, ok := s.auctions[bid.AuctionID]
	if !ok {
		return model.Bid{}, LedgerOutcome{}, fmt.Errorf("commit bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	guest, ok := s.guests[bid.Bidder]
	if !ok {
		return model.Bid{}, LedgerOutcome{}, fmt.Errorf("commit bid by %s: %w", bid.Bidder, auctionerrors.ErrGuestNotFound)
	}

	outcome := LedgerOutcome{Kind: OutcomeCreated, NewAmount: bid.Amount}
	replaced := false
	if commit.Replace {
		ledger := s.bids[bid.AuctionID]
		for i, existing := range ledger {
			if existing.Bidder == bid.Bidder {
				outcome = LedgerOutcome{Kind: OutcomeReplaced, OldAmount: existing.Amount, NewAmount: bid.Amount}
				bid.BidID = existing.BidID
				ledger[i].Amount = bid.Amount
				ledger[i].CreatedAt = bid.CreatedAt
				bid = ledger[i]
				replaced = true
				break
			}
		}
	}
	if !replaced {
		s.bids[bid.AuctionID] = append(s.bids[bid.AuctionID], bid)
	}

	auction.CurrentPrice = commit.NewPrice
	auction.EndTime = commit.NewEndTime
	auction.AntiSnipingActive = commit.AntiSnipingActive
	s.auctions[bid.AuctionID] = auction

	last := commit.BidderLastBid
	guest.LastBidTime = &last
	s.guests[bid.Bidder] = guest

	return bid, outcome, nil
}

// TopBids returns up to n bids for an auction in the requested ordering.
func (s *MemoryStore) TopBids(auctionID string, n int, ordering BidOrdering) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("top bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	bids := append([]model.Bid(nil), s.bids[auctionID]...)
	if len(bids) == 0 {
		return nil, fmt.Errorf("top bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}

	switch ordering {
	case ByAmountDesc:
		sort.SliceStable(bids, func(i, j int) bool {
			if bids[i].Amount != bids[j].Amount {
				return bids[i].Amount > bids[j].Amount
			}
			return bids[i].CreatedAt.Before(bids[j].CreatedAt)
		})
	default:
		sort.SliceStable(bids, func(i, j int) bool {
			return bids[i].CreatedAt.After(bids[j].CreatedAt)
		})
	}

	if n > 0 && len(bids) > n {
		bids = bids[:n]
	}
	return bids, nil
}

// LatestBidFor returns the bidder's live bid on an auction. In silent mode
// that is the single replaceable row; in standard mode the most recent one.
func (s *MemoryStore) LatestBidFor(auctionID, bidder string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.auctions[auctionID]; !ok {
		return model.Bid{}, fmt.Errorf("latest bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	var latest model.Bid
	found := false
	for _, b := range s.bids[auctionID] {
		if b.Bidder != bidder {
			continue
		}
		if !found || b.CreatedAt.After(latest.CreatedAt) {
			latest = b
			found = true
		}
	}
	if !found {
		return model.Bid{}, fmt.Errorf("latest bid by %s on auction %s: %w", bidder, auctionID, auctionerrors.ErrNoBids)
	}
	return latest, nil
}

// CreateGuest registers a new guest identity. Display names are unique.
func (s *MemoryStore) CreateGuest(username string, now time.Time) (model.GuestIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.guests[username]; exists {
		return model.GuestIdentity{}, fmt.Errorf("create guest %s: %w", username, auctionerrors.ErrUsernameTaken)
	}

	guest := model.GuestIdentity{Username: username, CreatedAt: now}
	s.guests[username] = guest
	return guest, nil
}

// GetGuest returns one guest identity.
func (s *MemoryStore) GetGuest(username string) (model.GuestIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guest, ok := s.guests[username]
	if !ok {
		return model.GuestIdentity{}, fmt.Errorf("get guest %s: %w", username, auctionerrors.ErrGuestNotFound)
	}
	return guest, nil
}

// RenameGuest changes a guest's display name, keeping bid attribution via
// the ledger rows' bidder field updated as well.
func (s *MemoryStore) RenameGuest(oldName, newName string) (model.GuestIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guest, ok := s.guests[oldName]
	if !ok {
		return model.GuestIdentity{}, fmt.Errorf("rename guest %s: %w", oldName, auctionerrors.ErrGuestNotFound)
	}
	if newName != oldName {
		if _, exists := s.guests[newName]; exists {
			return model.GuestIdentity{}, fmt.Errorf("rename guest to %s: %w", newName, auctionerrors.ErrUsernameTaken)
		}
	}

	guest.Username = newName
	delete(s.guests, oldName)
	s.guests[newName] = guest

	for auctionID, ledger := range s.bids {
		for i := range ledger {
			if ledger[i].Bidder == oldName {
				ledger[i].Bidder = newName
			}
		}
		s.bids[auctionID] = ledger
	}

	return guest, nil
}

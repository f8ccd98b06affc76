package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"auction-live/internal/auctionerrors"
	bidding "auction-live/internal/biddingService"
	model "auction-live/internal/models"
	"auction-live/internal/repository"
	"auction-live/services/bidding/helpers"
	"auction-live/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	SubmitBid(auctionID, username string, amount int64) (bidding.BidResult, error)
	GetAuctionStatus(auctionID string) (bidding.AuctionStatusView, error)
	GetTopBids(auctionID string, n int) ([]model.Bid, error)
	GetWinningBid(auctionID string) (model.Bid, error)
	GetOwnBid(auctionID, username string) (model.Bid, error)
	JoinAuction(username string) (model.GuestIdentity, error)
	RenameGuest(oldName, newName string) (model.GuestIdentity, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

func toBidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		Bidder:    bid.Bidder,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// SubmitBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) SubmitBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	result, err := h.service.SubmitBid(auctionID, req.Username, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SubmitBidHandler: failed to submit bid", map[string]any{
			"handler":    "SubmitBidHandler",
			"auction_id": auctionID,
			"username":   req.Username,
			"error":      err.Error(),
		})
		return
	}

	if !result.Accepted {
		rej := result.Rejection
		utils.JSONResponse(c, helpers.RejectionStatus(rej), helpers.NewRejectionResponse(rej), "bid rejected")
		utils.Info("SubmitBidHandler: bid rejected", map[string]any{
			"auction_id": auctionID,
			"username":   req.Username,
			"amount":     req.Amount,
			"reason":     string(rej.Reason),
		})
		return
	}

	resp := helpers.SubmitBidResponse{
		Bid:      toBidResponse(result.Bid),
		NewPrice: result.NewPrice,
		Extended: result.Extended,
		Replaced: result.Outcome.Kind == repository.OutcomeReplaced,
	}
	if result.Extended {
		resp.NewEndTime = result.NewEndTime.UTC().Format(time.RFC3339)
	}
	if resp.Replaced {
		resp.OldAmount = result.Outcome.OldAmount
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid accepted")
	helpers.LogSuccess("SubmitBidHandler", "bid accepted", map[string]any{
		"bid_id":     result.Bid.BidID,
		"auction_id": auctionID,
		"username":   req.Username,
		"amount":     req.Amount,
		"new_price":  result.NewPrice,
		"extended":   result.Extended,
	})
}

// GetAuctionStatusHandler handles GET /auctions/:auction_id/status
func (h *BiddingHandler) GetAuctionStatusHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	view, err := h.service.GetAuctionStatus(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionStatusHandler: error retrieving status", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction status retrieved successfully")
}

// GetTopBidsHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) GetTopBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	n, _ := strconv.Atoi(c.DefaultQuery("n", "0"))

	bids, err := h.service.GetTopBids(auctionID, n)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetTopBidsHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, toBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetTopBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bid, err := h.service.GetWinningBid(auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "winning bid retrieved successfully")
}

// GetOwnBidHandler handles GET /auctions/:auction_id/bids/:username
func (h *BiddingHandler) GetOwnBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	username := c.Param("username")

	bid, err := h.service.GetOwnBid(auctionID, username)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no bid found")
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetOwnBidHandler: error retrieving bid", map[string]any{"auction_id": auctionID, "username": username, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, toBidResponse(bid), "bid retrieved successfully")
}

// JoinAuctionHandler handles POST /guests
func (h *BiddingHandler) JoinAuctionHandler(c *gin.Context) {
	var req helpers.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "JoinAuctionHandler", err)
		return
	}

	guest, err := h.service.JoinAuction(req.Username)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("JoinAuctionHandler: failed to create guest", map[string]any{"username": req.Username, "error": err.Error()})
		return
	}

	resp := helpers.GuestResponse{
		Username:  guest.Username,
		CreatedAt: guest.CreatedAt.UTC().Format(time.RFC3339),
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "guest created successfully")
	helpers.LogSuccess("JoinAuctionHandler", "guest created successfully", map[string]any{"username": guest.Username})
}

// RenameGuestHandler handles PUT /guests/:username
func (h *BiddingHandler) RenameGuestHandler(c *gin.Context) {
	oldName := c.Param("username")

	var req helpers.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RenameGuestHandler", err)
		return
	}

	guest, err := h.service.RenameGuest(oldName, req.NewUsername)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RenameGuestHandler: failed to rename guest", map[string]any{"username": oldName, "error": err.Error()})
		return
	}

	resp := helpers.GuestResponse{
		Username:  guest.Username,
		CreatedAt: guest.CreatedAt.UTC().Format(time.RFC3339),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "guest renamed successfully")
	helpers.LogSuccess("RenameGuestHandler", "guest renamed successfully", map[string]any{
		"old_username": oldName,
		"new_username": guest.Username,
	})
}

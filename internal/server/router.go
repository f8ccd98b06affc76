package server

import (
	handler "auction-live/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService handler.BiddingServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("/:auction_id/bids", biddingHandler.SubmitBidHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.GetTopBidsHandler)
		auctions.GET("/:auction_id/bids/:username", biddingHandler.GetOwnBidHandler)
		auctions.GET("/:auction_id/status", biddingHandler.GetAuctionStatusHandler)
		auctions.GET("/:auction_id/winning", biddingHandler.GetWinningBidHandler)
	}

	guests := router.Group("/guests")
	{
		guests.POST("", biddingHandler.JoinAuctionHandler)
		guests.PUT("/:username", biddingHandler.RenameGuestHandler)
	}

	return router
}

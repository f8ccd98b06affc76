package main

import (
	"fmt"
	"os"
	"time"

	bidding "auction-live/internal/biddingService"
	"auction-live/internal/clock"
	"auction-live/internal/config"
	model "auction-live/internal/models"
	"auction-live/internal/repository"
	"auction-live/internal/server"
	"auction-live/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	store := repository.NewMemoryStore()
	clk := clock.New()

	if cfg.SeedDemo {
		seedDemoAuctions(store, clk)
	}

	biddingSvc := bidding.NewBiddingService(store, clk)

	router := server.SetupRouter(biddingSvc)

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedDemoAuctions adds sample auctions to the in-memory store
func seedDemoAuctions(store *repository.MemoryStore, clk clock.Clock) {
	now := clk.Now()
	auctions := []model.Auction{
		{
			AuctionID:     "auction1",
			Name:          "Vintage Watch",
			StartingPrice: 1_000_000,
			StartTime:     now,
			EndTime:       now.Add(30 * time.Minute),
			IsActive:      true,
			Mode:          model.ModeStandard,
			CreatedAt:     now,
		},
		{
			AuctionID:     "auction2",
			Name:          "Signed Jersey",
			StartingPrice: 5_000_000,
			StartTime:     now.Add(10 * time.Minute),
			EndTime:       now.Add(40 * time.Minute),
			IsActive:      true,
			Mode:          model.ModeStandard,
			CreatedAt:     now,
		},
		{
			AuctionID:     "auction3",
			Name:          "Original Painting",
			StartingPrice: 20_000_000,
			StartTime:     now,
			EndTime:       now.Add(time.Hour),
			IsActive:      true,
			Mode:          model.ModeSilent,
			CreatedAt:     now,
		},
	}

	for _, a := range auctions {
		store.AddAuction(a)
	}
}

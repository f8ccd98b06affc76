package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bidding "auction-live/internal/biddingService"
	"auction-live/internal/clock"
	model "auction-live/internal/models"
	"auction-live/internal/repository"
	"auction-live/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testEnv bundles the router with the store and clock so tests can seed
// state and steer time.
type testEnv struct {
	Router *gin.Engine
	Store  *repository.MemoryStore
	Clock  *clock.MockClock
}

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// SetupTestEnv initializes the full stack on an in-memory store with a
// manually advanced clock.
func SetupTestEnv(auctions ...model.Auction) *testEnv {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	for _, a := range auctions {
		store.AddAuction(a)
	}

	clk := clock.NewMock(testStart)
	service := bidding.NewBiddingService(store, clk)
	router := server.SetupRouter(service)

	return &testEnv{Router: router, Store: store, Clock: clk}
}

// ExecuteRequestAndParse executes an HTTP request on the env's router and
// parses the JSON envelope.
func (env *testEnv) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// JoinGuest registers a guest through the API and fails the test on error.
func (env *testEnv) JoinGuest(t *testing.T, username string) {
	t.Helper()

	_, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/guests", map[string]any{"username": username})
	require.Equal(t, http.StatusCreated, w.Code)
}

// standardAuction returns an ongoing standard auction relative to testStart.
func standardAuction(auctionID string, currentPrice int64, remaining time.Duration) model.Auction {
	return model.Auction{
		AuctionID:     auctionID,
		Name:          "Integration Auction",
		StartingPrice: 1_000_000,
		CurrentPrice:  currentPrice,
		StartTime:     testStart.Add(-time.Hour),
		EndTime:       testStart.Add(remaining),
		IsActive:      true,
		Mode:          model.ModeStandard,
	}
}

// silentAuction returns an ongoing silent auction relative to testStart.
func silentAuction(auctionID string, startingPrice int64) model.Auction {
	return model.Auction{
		AuctionID:     auctionID,
		Name:          "Silent Integration Auction",
		StartingPrice: startingPrice,
		StartTime:     testStart.Add(-time.Hour),
		EndTime:       testStart.Add(time.Hour),
		IsActive:      true,
		Mode:          model.ModeSilent,
	}
}

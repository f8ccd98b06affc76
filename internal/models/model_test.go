package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newAuction(start, end time.Time) Auction {
	return Auction{
		AuctionID:     "auction1",
		Name:          "Test Auction",
		StartingPrice: 1_000_000,
		CurrentPrice:  1_000_000,
		StartTime:     start,
		EndTime:       end,
		IsActive:      true,
		Mode:          ModeStandard,
	}
}

// Test Status derivation from wall-clock time
func TestAuction_Status(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		isActive bool
		want     AuctionStatus
	}{
		{name: "upcoming", start: now.Add(time.Hour), end: now.Add(2 * time.Hour), isActive: true, want: StatusUpcoming},
		{name: "ongoing", start: now.Add(-time.Hour), end: now.Add(time.Hour), isActive: true, want: StatusOngoing},
		{name: "finished", start: now.Add(-2 * time.Hour), end: now.Add(-time.Hour), isActive: true, want: StatusFinished},
		{name: "deactivated_during_window", start: now.Add(-time.Hour), end: now.Add(time.Hour), isActive: false, want: StatusFinished},
		{name: "ongoing_at_start_boundary", start: now, end: now.Add(time.Hour), isActive: true, want: StatusOngoing},
		{name: "ongoing_at_end_boundary", start: now.Add(-time.Hour), end: now, isActive: true, want: StatusOngoing},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := newAuction(tc.start, tc.end)
			a.IsActive = tc.isActive
			require.Equal(t, tc.want, a.Status(now))
		})
	}
}

// Test TimeRemaining
func TestAuction_TimeRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	a := newAuction(now.Add(-time.Minute), now.Add(45*time.Second))
	require.Equal(t, 45*time.Second, a.TimeRemaining(now))

	upcoming := newAuction(now.Add(time.Hour), now.Add(2*time.Hour))
	require.Zero(t, upcoming.TimeRemaining(now))

	finished := newAuction(now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.Zero(t, finished.TimeRemaining(now))
}

// Test InAntiSnipingWindow
func TestAuction_InAntiSnipingWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		remaining time.Duration
		want      bool
	}{
		{name: "well_before_window", remaining: 5 * time.Minute, want: false},
		{name: "just_outside_window", remaining: 31 * time.Second, want: false},
		{name: "at_window_boundary", remaining: 30 * time.Second, want: true},
		{name: "inside_window", remaining: 10 * time.Second, want: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := newAuction(now.Add(-time.Hour), now.Add(tc.remaining))
			require.Equal(t, tc.want, a.InAntiSnipingWindow(now))
		})
	}

	t.Run("not_in_window_when_finished", func(t *testing.T) {
		a := newAuction(now.Add(-2*time.Hour), now.Add(-time.Second))
		require.False(t, a.InAntiSnipingWindow(now))
	})
}

// Test ShouldExtend
func TestAuction_ShouldExtend(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		mode          AuctionMode
		remaining     time.Duration
		amount        int64
		previousPrice int64
		want          bool
	}{
		{name: "large_bid_inside_window", mode: ModeStandard, remaining: 10 * time.Second, amount: 101_500_000, previousPrice: 100_000_000, want: true},
		{name: "small_bid_inside_window", mode: ModeStandard, remaining: 10 * time.Second, amount: 100_500_000, previousPrice: 100_000_000, want: false},
		{name: "exact_threshold_increment", mode: ModeStandard, remaining: 10 * time.Second, amount: 101_000_000, previousPrice: 100_000_000, want: true},
		{name: "large_bid_outside_window", mode: ModeStandard, remaining: 5 * time.Minute, amount: 150_000_000, previousPrice: 100_000_000, want: false},
		{name: "silent_mode_never_extends", mode: ModeSilent, remaining: 10 * time.Second, amount: 150_000_000, previousPrice: 100_000_000, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := newAuction(now.Add(-time.Hour), now.Add(tc.remaining))
			a.Mode = tc.mode
			a.CurrentPrice = tc.previousPrice
			require.Equal(t, tc.want, a.ShouldExtend(tc.amount, tc.previousPrice, now))
		})
	}
}

package engagement

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/BALAJIISWAROOP/Snap-Shots/models"
	"github.com/BALAJIISWAROOP/Snap-Shots/storage"
)

// ConfirmFunc is the injected yes/no decision point used by Unlock. The real
// payment capture lives outside this package; unlocking only needs the
// viewer's confirmation.
type ConfirmFunc func(prompt string) bool

// AlwaysConfirm is the ConfirmFunc used by the HTTP surface, where hitting
// the unlock endpoint is itself the confirmation.
func AlwaysConfirm(string) bool { return true }

// Store holds the engagement state for one series in one viewing session.
// Unlock and the session rating reset when the view closes; watchlist and
// follow membership live in the durable set store.
//
// A single viewer session drives a store; operations are not safe for
// concurrent use.
type Store struct {
	series  models.Series
	store   storage.SetStore
	confirm ConfirmFunc
	state   models.EngagementState
}

// NewStore seeds view state from the durable store and the series' seed
// rating aggregate.
func NewStore(ctx context.Context, series models.Series, setStore storage.SetStore, confirm ConfirmFunc) *Store {
	return &Store{
		series:  series,
		store:   setStore,
		confirm: confirm,
		state: models.EngagementState{
			SeriesID:    series.ID,
			InWatchlist: storage.Contains(ctx, setStore, storage.KeyWatchlist, series.ID),
			DisplayRating: models.RatingSummary{
				Average: series.AverageRating,
				Count:   series.RatingCount,
			},
		},
	}
}

// State returns a copy of the current view state.
func (s *Store) State() models.EngagementState {
	return s.state
}

// Unlock asks the viewer to confirm and, on yes, grants access for the rest
// of the session. Unlocking an already-unlocked series is a no-op.
func (s *Store) Unlock() models.EngagementState {
	if s.state.Unlocked {
		return s.state
	}
	prompt := fmt.Sprintf("Confirm unlocking %q for ₹10?", s.series.Title)
	if s.confirm(prompt) {
		s.state.Unlocked = true
	}
	return s.state
}

// Rate folds a 1-5 star vote into the displayed aggregate as one more vote.
// Silently ignored unless the series is unlocked, the viewer has not rated
// it this session, and stars is in range.
func (s *Store) Rate(stars int) models.EngagementState {
	if !s.state.Unlocked || s.state.UserRating != 0 || stars < 1 || stars > 5 {
		return s.state
	}

	prior := s.state.DisplayRating
	newCount := prior.Count + 1
	s.state.UserRating = stars
	s.state.DisplayRating = models.RatingSummary{
		Average: round1((prior.Average*float64(prior.Count) + float64(stars)) / float64(newCount)),
		Count:   newCount,
	}
	return s.state
}

// ToggleWatchlist flips the series' durable watchlist membership and returns
// the new state. Works whether or not the series is unlocked.
func (s *Store) ToggleWatchlist(ctx context.Context) bool {
	member, err := storage.Toggle(ctx, s.store, storage.KeyWatchlist, s.series.ID)
	if err != nil {
		log.Printf("Error writing watchlist for series %d: %v", s.series.ID, err)
	}
	s.state.InWatchlist = member
	return member
}

// ToggleFollow flips durable follow membership for a creator. Independent of
// any series state.
func ToggleFollow(ctx context.Context, setStore storage.SetStore, creatorID int64) bool {
	member, err := storage.Toggle(ctx, setStore, storage.KeyFollowedCreators, creatorID)
	if err != nil {
		log.Printf("Error writing followed creators for creator %d: %v", creatorID, err)
	}
	return member
}

// IsFollowing reports durable follow membership for a creator.
func IsFollowing(ctx context.Context, setStore storage.SetStore, creatorID int64) bool {
	return storage.Contains(ctx, setStore, storage.KeyFollowedCreators, creatorID)
}

// round1 rounds to one decimal place, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

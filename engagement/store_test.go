package engagement

import (
	"context"
	"testing"

	"github.com/BALAJIISWAROOP/Snap-Shots/models"
	"github.com/BALAJIISWAROOP/Snap-Shots/storage"
)

func testSeries() models.Series {
	return models.Series{
		ID:            42,
		Title:         "Midnight Diner Stories",
		Creator:       "Asha Rao",
		Genre:         "Drama",
		AverageRating: 4.2,
		RatingCount:   128,
	}
}

func TestUnlockRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, testSeries(), storage.NewMemoryStore(), func(string) bool { return false })

	if state := store.Unlock(); state.Unlocked {
		t.Fatal("declined confirmation should leave the series locked")
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	ctx := context.Background()
	confirmations := 0
	store := NewStore(ctx, testSeries(), storage.NewMemoryStore(), func(string) bool {
		confirmations++
		return true
	})

	if state := store.Unlock(); !state.Unlocked {
		t.Fatal("confirmed unlock should unlock the series")
	}
	if state := store.Unlock(); !state.Unlocked {
		t.Fatal("second unlock should keep the series unlocked")
	}
	if confirmations != 1 {
		t.Fatalf("unlocking an unlocked series should not re-confirm, got %d confirmations", confirmations)
	}
}

func TestRateFoldsVoteIntoAggregate(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, testSeries(), storage.NewMemoryStore(), AlwaysConfirm)
	store.Unlock()

	state := store.Rate(5)
	// (4.2*128 + 5) / 129 = 4.206..., rounded to one decimal
	if state.DisplayRating.Average != 4.2 {
		t.Fatalf("expected average 4.2, got %v", state.DisplayRating.Average)
	}
	if state.DisplayRating.Count != 129 {
		t.Fatalf("expected count 129, got %d", state.DisplayRating.Count)
	}
	if state.UserRating != 5 {
		t.Fatalf("expected user rating 5, got %d", state.UserRating)
	}
}

func TestRateRoundsHalfUp(t *testing.T) {
	ctx := context.Background()
	series := testSeries()
	series.AverageRating = 4.0
	series.RatingCount = 3
	store := NewStore(ctx, series, storage.NewMemoryStore(), AlwaysConfirm)
	store.Unlock()

	// (4.0*3 + 5) / 4 = 4.25, half-up to 4.3
	if state := store.Rate(5); state.DisplayRating.Average != 4.3 {
		t.Fatalf("expected average 4.3, got %v", state.DisplayRating.Average)
	}
}

func TestRateRequiresUnlock(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, testSeries(), storage.NewMemoryStore(), AlwaysConfirm)

	state := store.Rate(5)
	if state.UserRating != 0 || state.DisplayRating.Count != 128 {
		t.Fatalf("rating a locked series should be a no-op, got %+v", state)
	}
}

func TestRateTwiceIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, testSeries(), storage.NewMemoryStore(), AlwaysConfirm)
	store.Unlock()

	first := store.Rate(4)
	second := store.Rate(1)
	if second != first {
		t.Fatalf("second rating should change nothing: first %+v, second %+v", first, second)
	}
}

func TestRateRejectsOutOfRangeStars(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, testSeries(), storage.NewMemoryStore(), AlwaysConfirm)
	store.Unlock()

	for _, stars := range []int{0, 6, -1} {
		if state := store.Rate(stars); state.UserRating != 0 {
			t.Fatalf("stars=%d should be rejected, got %+v", stars, state)
		}
	}
}

func TestToggleWatchlistInvolution(t *testing.T) {
	ctx := context.Background()
	sets := storage.NewMemoryStore()
	if err := sets.WriteSet(ctx, storage.KeyWatchlist, []int64{7, 99}); err != nil {
		t.Fatal(err)
	}
	store := NewStore(ctx, testSeries(), sets, AlwaysConfirm)

	if !store.ToggleWatchlist(ctx) {
		t.Fatal("first toggle should add to watchlist")
	}
	if got := sets.ReadSet(ctx, storage.KeyWatchlist); len(got) != 3 || got[2] != 42 {
		t.Fatalf("expected [7 99 42], got %v", got)
	}

	if store.ToggleWatchlist(ctx) {
		t.Fatal("second toggle should remove from watchlist")
	}
	got := sets.ReadSet(ctx, storage.KeyWatchlist)
	if len(got) != 2 || got[0] != 7 || got[1] != 99 {
		t.Fatalf("other members should be unaffected, got %v", got)
	}
}

func TestStateSeededFromStorage(t *testing.T) {
	ctx := context.Background()
	sets := storage.NewMemoryStore()
	if err := sets.WriteSet(ctx, storage.KeyWatchlist, []int64{42}); err != nil {
		t.Fatal(err)
	}

	store := NewStore(ctx, testSeries(), sets, AlwaysConfirm)
	state := store.State()
	if !state.InWatchlist {
		t.Fatal("stored watchlist membership should seed the view state")
	}
	if state.Unlocked {
		t.Fatal("unlock state is never persisted; a fresh view starts locked")
	}
	if state.DisplayRating.Average != 4.2 || state.DisplayRating.Count != 128 {
		t.Fatalf("seed aggregate should come from the series record, got %+v", state.DisplayRating)
	}
}

func TestCorruptWatchlistReadsEmpty(t *testing.T) {
	ctx := context.Background()
	sets := storage.NewMemoryStore()
	sets.SetRaw(storage.KeyWatchlist, []byte("{not json"))

	store := NewStore(ctx, testSeries(), sets, AlwaysConfirm)
	if store.State().InWatchlist {
		t.Fatal("corrupt stored data should read as an empty watchlist")
	}

	// The next write replaces the corrupt value.
	if !store.ToggleWatchlist(ctx) {
		t.Fatal("toggle after corruption should add to watchlist")
	}
	if got := sets.ReadSet(ctx, storage.KeyWatchlist); len(got) != 1 || got[0] != 42 {
		t.Fatalf("expected [42], got %v", got)
	}
}

func TestToggleFollow(t *testing.T) {
	ctx := context.Background()
	sets := storage.NewMemoryStore()

	if !ToggleFollow(ctx, sets, 3) {
		t.Fatal("first toggle should follow the creator")
	}
	if !IsFollowing(ctx, sets, 3) {
		t.Fatal("follow membership should be durable")
	}
	if ToggleFollow(ctx, sets, 3) {
		t.Fatal("second toggle should unfollow")
	}
	if IsFollowing(ctx, sets, 3) {
		t.Fatal("unfollow should remove durable membership")
	}

	// Follow state is keyed separately from the watchlist.
	if got := sets.ReadSet(ctx, storage.KeyWatchlist); len(got) != 0 {
		t.Fatalf("follow toggles must not touch the watchlist, got %v", got)
	}
}

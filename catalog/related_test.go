package catalog

import (
	"testing"

	"github.com/BALAJIISWAROOP/Snap-Shots/models"
)

func TestRelatedGenreMatchesPrecedeCreatorMatches(t *testing.T) {
	x := models.Series{ID: 1, Title: "X", Genre: "Comedy", Creator: "A"}
	y := models.Series{ID: 2, Title: "Y", Genre: "Comedy", Creator: "B"}
	z := models.Series{ID: 3, Title: "Z", Genre: "Drama", Creator: "A"}

	got := Related(x, []models.Series{x, y, z})
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("expected [Y Z], got %v", ids(got))
	}
}

func TestRelatedDeduplicatesByFirstOccurrence(t *testing.T) {
	x := models.Series{ID: 1, Genre: "Comedy", Creator: "A"}
	w := models.Series{ID: 2, Genre: "Comedy", Creator: "A"} // matches both
	y := models.Series{ID: 3, Genre: "Comedy", Creator: "B"}
	z := models.Series{ID: 4, Genre: "Drama", Creator: "A"}

	got := Related(x, []models.Series{x, w, y, z})
	if len(got) != 3 {
		t.Fatalf("expected 3 unique series, got %v", ids(got))
	}
	// W keeps its genre-relative position ahead of the creator-only match.
	if got[0].ID != 2 || got[1].ID != 3 || got[2].ID != 4 {
		t.Fatalf("expected [2 3 4], got %v", ids(got))
	}
}

func TestRelatedExcludesSubjectAndHandlesNoMatches(t *testing.T) {
	x := models.Series{ID: 1, Genre: "Comedy", Creator: "A"}
	z := models.Series{ID: 2, Genre: "Drama", Creator: "B"}

	if got := Related(x, []models.Series{x, z}); len(got) != 0 {
		t.Fatalf("expected no related series, got %v", ids(got))
	}
	for _, s := range Related(x, []models.Series{x, x}) {
		if s.ID == x.ID {
			t.Fatal("related series must never include the subject")
		}
	}
}

func TestRelatedMatchesAreCaseSensitive(t *testing.T) {
	x := models.Series{ID: 1, Genre: "Comedy", Creator: "A"}
	y := models.Series{ID: 2, Genre: "comedy", Creator: "a"}

	if got := Related(x, []models.Series{x, y}); len(got) != 0 {
		t.Fatalf("genre and creator matching is exact, got %v", ids(got))
	}
}

func TestSeriesAndCreatorLookups(t *testing.T) {
	cat := &Catalog{
		Series: []models.Series{
			{ID: 1, Title: "First", Creator: "Asha Rao"},
			{ID: 2, Title: "Second", Creator: "Ben Cole", Featured: true},
		},
		Creators: []models.Creator{
			{ID: 10, Name: "Asha Rao"},
		},
	}

	if s := cat.SeriesByID(2); s == nil || s.Title != "Second" {
		t.Fatalf("SeriesByID(2) = %v", s)
	}
	if s := cat.SeriesByID(99); s != nil {
		t.Fatalf("expected nil for unknown id, got %v", s)
	}
	if c := cat.CreatorByName("Asha Rao"); c == nil || c.ID != 10 {
		t.Fatalf("CreatorByName = %v", c)
	}
	if c := cat.CreatorByName("Nobody"); c != nil {
		t.Fatal("free-text creator names may have no profile")
	}
	if f := cat.Featured(); f == nil || f.ID != 2 {
		t.Fatalf("Featured = %v", f)
	}
	if got := cat.SeriesByCreator("Asha Rao"); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("SeriesByCreator = %v", ids(got))
	}
}

func ids(series []models.Series) []int64 {
	out := make([]int64, len(series))
	for i, s := range series {
		out[i] = s.ID
	}
	return out
}

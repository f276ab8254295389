package catalog

import (
	"github.com/BALAJIISWAROOP/Snap-Shots/models"
)

// Related computes the related-series strip for one series: everything in the
// catalog sharing its genre, then everything sharing its creator, minus the
// series itself, deduplicated by id keeping the first occurrence. Genre and
// creator matches are exact and case-sensitive. Pure function of its inputs.
func Related(subject models.Series, all []models.Series) []models.Series {
	var byGenre, byCreator []models.Series
	for _, s := range all {
		if s.ID == subject.ID {
			continue
		}
		if s.Genre == subject.Genre {
			byGenre = append(byGenre, s)
		}
		if s.Creator == subject.Creator {
			byCreator = append(byCreator, s)
		}
	}

	seen := make(map[int64]bool, len(byGenre)+len(byCreator))
	related := make([]models.Series, 0, len(byGenre)+len(byCreator))
	for _, s := range append(byGenre, byCreator...) {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		related = append(related, s)
	}
	return related
}

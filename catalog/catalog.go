package catalog

import (
	"sort"

	"github.com/BALAJIISWAROOP/Snap-Shots/models"
	"gorm.io/gorm"
)

// Catalog is the already-loaded series and creator feed the engagement and
// assistant features work against. It is read-only after Load.
type Catalog struct {
	Series   []models.Series
	Creators []models.Creator
}

// Load reads the full catalog into memory. Episodes come back in presentation
// order.
func Load(db *gorm.DB) (*Catalog, error) {
	var cat Catalog
	if err := db.Preload("Episodes", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}).Order("id ASC").Find(&cat.Series).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&cat.Creators).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// SeriesByID returns the series with the given id, or nil.
func (c *Catalog) SeriesByID(id int64) *models.Series {
	for i := range c.Series {
		if c.Series[i].ID == id {
			return &c.Series[i]
		}
	}
	return nil
}

// CreatorByID returns the creator with the given id, or nil.
func (c *Catalog) CreatorByID(id int64) *models.Creator {
	for i := range c.Creators {
		if c.Creators[i].ID == id {
			return &c.Creators[i]
		}
	}
	return nil
}

// CreatorByName resolves the free-text Series.Creator join key, or nil when
// the creator has no profile.
func (c *Catalog) CreatorByName(name string) *models.Creator {
	for i := range c.Creators {
		if c.Creators[i].Name == name {
			return &c.Creators[i]
		}
	}
	return nil
}

// SeriesByCreator returns every series credited to the named creator.
func (c *Catalog) SeriesByCreator(name string) []models.Series {
	var out []models.Series
	for _, s := range c.Series {
		if s.Creator == name {
			out = append(out, s)
		}
	}
	return out
}

// Featured returns the featured series, falling back to the first one.
func (c *Catalog) Featured() *models.Series {
	for i := range c.Series {
		if c.Series[i].Featured {
			return &c.Series[i]
		}
	}
	if len(c.Series) > 0 {
		return &c.Series[0]
	}
	return nil
}

// SortedByRatingCount returns series ids ordered by rating count, most rated
// first. Used as the fallback trending order before the worker has run.
func (c *Catalog) SortedByRatingCount() []int64 {
	series := make([]models.Series, len(c.Series))
	copy(series, c.Series)
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].RatingCount > series[j].RatingCount
	})
	ids := make([]int64, len(series))
	for i, s := range series {
		ids[i] = s.ID
	}
	return ids
}

package catalog

import (
	"net/http"
	"strconv"

	"github.com/BALAJIISWAROOP/Snap-Shots/models"
	"github.com/BALAJIISWAROOP/Snap-Shots/storage"
	"github.com/gin-gonic/gin"
)

// KeyTrendingSeries holds the ranked id list written by the trending worker.
const KeyTrendingSeries = "trendingSeries"

type Handler struct {
	Catalog *Catalog
	Store   storage.SetStore
}

func NewHandler(cat *Catalog, store storage.SetStore) *Handler {
	return &Handler{Catalog: cat, Store: store}
}

func (h *Handler) ListSeries(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Series)
}

func (h *Handler) GetSeries(c *gin.Context) {
	series, ok := h.seriesFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *Handler) GetRelatedSeries(c *gin.Context) {
	series, ok := h.seriesFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, Related(*series, h.Catalog.Series))
}

func (h *Handler) GetCreator(c *gin.Context) {
	creator, ok := h.creatorFromParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, creator)
}

func (h *Handler) GetCreatorSeries(c *gin.Context) {
	creator, ok := h.creatorFromParam(c)
	if !ok {
		return
	}
	series := h.Catalog.SeriesByCreator(creator.Name)
	if series == nil {
		series = []models.Series{}
	}
	c.JSON(http.StatusOK, series)
}

// GetTrending serves the worker's ranked snapshot, falling back to rating
// counts when the snapshot has not been computed yet.
func (h *Handler) GetTrending(c *gin.Context) {
	ids := h.Store.ReadSet(c.Request.Context(), KeyTrendingSeries)
	if len(ids) == 0 {
		ids = h.Catalog.SortedByRatingCount()
	}

	trending := make([]models.Series, 0, len(ids))
	for _, id := range ids {
		if s := h.Catalog.SeriesByID(id); s != nil {
			trending = append(trending, *s)
		}
	}
	c.JSON(http.StatusOK, trending)
}

func (h *Handler) seriesFromParam(c *gin.Context) (*models.Series, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return nil, false
	}
	series := h.Catalog.SeriesByID(id)
	if series == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
		return nil, false
	}
	return series, true
}

func (h *Handler) creatorFromParam(c *gin.Context) (*models.Creator, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID"})
		return nil, false
	}
	creator := h.Catalog.CreatorByID(id)
	if creator == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
		return nil, false
	}
	return creator, true
}

package engagement

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/BALAJIISWAROOP/Snap-Shots/catalog"
	"github.com/BALAJIISWAROOP/Snap-Shots/storage"
	"github.com/gin-gonic/gin"
)

// Handler exposes the engagement store over HTTP. Stores are created lazily
// per series and live until the client closes the view, mirroring the
// one-session-per-viewer model.
type Handler struct {
	Catalog *catalog.Catalog
	Store   storage.SetStore
	Confirm ConfirmFunc

	mu       sync.Mutex
	sessions map[int64]*Store
}

func NewHandler(cat *catalog.Catalog, store storage.SetStore, confirm ConfirmFunc) *Handler {
	return &Handler{
		Catalog:  cat,
		Store:    store,
		Confirm:  confirm,
		sessions: make(map[int64]*Store),
	}
}

type RateRequest struct {
	Stars int `json:"stars" binding:"required,min=1,max=5"`
}

func (h *Handler) GetEngagement(c *gin.Context) {
	store, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, store.State())
}

func (h *Handler) Unlock(c *gin.Context) {
	store, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, store.Unlock())
}

func (h *Handler) Rate(c *gin.Context) {
	store, ok := h.session(c)
	if !ok {
		return
	}
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Precondition violations (locked series, second rating) are silent
	// no-ops; the returned state tells the client what actually happened.
	c.JSON(http.StatusOK, store.Rate(req.Stars))
}

func (h *Handler) ToggleWatchlist(c *gin.Context) {
	store, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_watchlist": store.ToggleWatchlist(c.Request.Context())})
}

// CloseView drops the per-series session, discarding unlock and the session
// rating. Watchlist membership survives in the durable store.
func (h *Handler) CloseView(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return
	}
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()
	c.Status(http.StatusNoContent)
}

func (h *Handler) ToggleFollow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID"})
		return
	}
	if h.Catalog.CreatorByID(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": ToggleFollow(c.Request.Context(), h.Store, id)})
}

func (h *Handler) GetFollow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID"})
		return
	}
	if h.Catalog.CreatorByID(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": IsFollowing(c.Request.Context(), h.Store, id)})
}

func (h *Handler) session(c *gin.Context) (*Store, bool) {
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

	h.mu.Lock()
	defer h.mu.Unlock()
	if store, ok := h.sessions[id]; ok {
		return store, true
	}
	store := NewStore(c.Request.Context(), *series, h.Store, h.Confirm)
	h.sessions[id] = store
	return store, true
}

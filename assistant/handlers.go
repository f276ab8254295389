package assistant

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/BALAJIISWAROOP/Snap-Shots/catalog"
	"github.com/BALAJIISWAROOP/Snap-Shots/models"
	"github.com/gin-gonic/gin"
)

// Handler exposes per-series assistant sessions over HTTP. One session per
// series, created on first use, dropped when the client closes the view.
type Handler struct {
	Catalog *catalog.Catalog
	Gen     Generator

	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewHandler(cat *catalog.Catalog, gen Generator) *Handler {
	return &Handler{
		Catalog:  cat,
		Gen:      gen,
		sessions: make(map[int64]*Session),
	}
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// GetSession returns the conversation so far plus the canned prompt starters.
func (h *Handler) GetSession(c *gin.Context) {
	session, _, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":     session.Snapshot(),
		"suggestions": PromptStarters,
	})
}

// Ask submits one question and waits for the model's answer. A second ask
// while one is pending is rejected with 409; the no-op cases return the
// unchanged session.
func (h *Handler) Ask(c *gin.Context) {
	session, _, ok := h.session(c)
	if !ok {
		return
	}
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !session.Submit(c.Request.Context(), req.Question) {
		if session.State() == StateSending {
			c.JSON(http.StatusConflict, gin.H{"error": "A question is already pending"})
			return
		}
		c.JSON(http.StatusOK, session.Snapshot())
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// CloseSession tears the conversation down. Any in-flight call keeps running
// and its late response is discarded.
func (h *Handler) CloseSession(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return
	}
	h.mu.Lock()
	if session, ok := h.sessions[id]; ok {
		session.Close()
		delete(h.sessions, id)
	}
	h.mu.Unlock()
	c.Status(http.StatusNoContent)
}

func (h *Handler) session(c *gin.Context) (*Session, *models.Series, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return nil, nil, false
	}
	series := h.Catalog.SeriesByID(id)
	if series == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
		return nil, nil, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if session, ok := h.sessions[id]; ok {
		return session, series, true
	}
	session := NewSession(*series, h.Gen)
	h.sessions[id] = session
	return session, series, true
}

package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Quuxplusone/xword/internal/auth"
	"github.com/Quuxplusone/xword/internal/models"
	"github.com/Quuxplusone/xword/internal/store"
	"github.com/Quuxplusone/xword/pkg/dict"
	"github.com/Quuxplusone/xword/pkg/fill"
	"github.com/Quuxplusone/xword/pkg/grid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handlers serves the fill API. Store may be nil, in which case fills
// are not persisted and history is unavailable.
type Handlers struct {
	dict         dict.Dictionary
	authService  *auth.Service
	store        *store.Store
	maxSolutions int
	timeout      time.Duration
}

func NewHandlers(d dict.Dictionary, authService *auth.Service, st *store.Store) *Handlers {
	return &Handlers{
		dict:         d,
		authService:  authService,
		store:        st,
		maxSolutions: 100,
		timeout:      30 * time.Second,
	}
}

// Login exchanges the admin password for a bearer token.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}

// Fill runs a synchronous fill and returns every solution up to the
// server cap.
func (h *Handlers) Fill(c *gin.Context) {
	var req models.FillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grid is required"})
		return
	}

	g, opts, err := h.prepare(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	var solutions [][]string
	filler := fill.New(h.dict, opts)
	count, err := filler.Fill(ctx, g, func(solved *grid.Grid) {
		solutions = append(solutions, solved.Lines())
	})
	if err != nil && count == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	elapsed := time.Since(start)

	resp := models.FillResponse{
		ID:        uuid.New().String(),
		Grid:      req.Grid,
		Solutions: solutions,
		Count:     count,
		ElapsedMs: elapsed.Milliseconds(),
	}
	h.record(&resp)

	c.JSON(http.StatusOK, resp)
}

// RecentFills returns the newest persisted fill records.
func (h *Handlers) RecentFills(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "fill history is not configured"})
		return
	}

	recs, err := h.store.RecentFills(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load fill history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fills": recs})
}

// prepare validates a request into a grid and solver options.
func (h *Handlers) prepare(req *models.FillRequest) (*grid.Grid, fill.Options, error) {
	g, err := grid.Parse(req.Grid)
	if err != nil {
		return nil, fill.Options{}, err
	}

	max := req.MaxSolutions
	if max <= 0 || max > h.maxSolutions {
		max = h.maxSolutions
	}
	opts := fill.Options{
		AllowDuplicates: req.AllowDuplicates,
		MaxSolutions:    max,
		EveryNth:        req.EveryNth,
		Naive:           req.Naive,
	}
	return g, opts, nil
}

// record persists one fill, best-effort.
func (h *Handlers) record(resp *models.FillResponse) {
	if h.store == nil {
		return
	}
	rec := &models.FillRecord{
		ID:            resp.ID,
		Grid:          resp.Grid,
		SolutionCount: resp.Count,
		ElapsedMs:     resp.ElapsedMs,
		CreatedAt:     time.Now(),
	}
	if err := h.store.SaveFill(rec); err != nil {
		log.Printf("failed to save fill %s: %v", rec.ID, err)
	}
}

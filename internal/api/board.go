package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mcoelho/zombie-horde/internal/constants"
)

// ListLeaderboard returns the top zombies by wins (desc). Optional ?limit=N
// up to 100.
func (h *ZombieHandler) ListLeaderboard(c *gin.Context) {
	limit := h.leaderboardLimit
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	zombies, err := h.repo.GetTopZombies(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBoard})
		return
	}
	c.JSON(http.StatusOK, zombies)
}

// ListEvents returns the most recent ledger events, oldest first. Optional
// ?limit=N up to 500.
func (h *ZombieHandler) ListEvents(c *gin.Context) {
	limit := 100
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	events, err := h.repo.ListEvents(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLog})
		return
	}
	c.JSON(http.StatusOK, events)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcoelho/zombie-horde/internal/constants"
	"github.com/mcoelho/zombie-horde/internal/game"
	"github.com/mcoelho/zombie-horde/internal/service"
)

type AttackRequest struct {
	Caller   string `json:"caller"`
	TargetID uint   `json:"target_id"`
}

// AttackZombie resolves a battle between the caller's zombie (path) and the
// target (body). Blocked while the attacker cools down.
func (h *ZombieHandler) AttackZombie(c *gin.Context) {
	attackerID, ok := parseZombieID(c)
	if !ok {
		return
	}
	var req AttackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Caller == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCallerRequired})
		return
	}

	res, ev, err := service.Attack(h.led, h.repo, game.Principal(req.Caller), attackerID, req.TargetID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	out := gin.H{
		"won":      res.Won,
		"attacker": res.Attacker,
		"target":   res.Target,
		"event":    ev,
	}
	if res.Offspring != nil {
		out["offspring"] = res.Offspring
	}
	c.JSON(http.StatusOK, out)
}

type LevelUpRequest struct {
	Caller string `json:"caller"`
}

// LevelUpZombie raises the level of the caller's zombie by one.
func (h *ZombieHandler) LevelUpZombie(c *gin.Context) {
	id, ok := parseZombieID(c)
	if !ok {
		return
	}
	var req LevelUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Caller == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrCallerRequired})
		return
	}

	z, ev, err := service.LevelUp(h.led, h.repo, game.Principal(req.Caller), id)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"zombie": z, "event": ev})
}
